package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// UserController implements the auth endpoints of the stub API: register,
// login, logout, token refresh and profile get/patch. Access tokens are
// short-lived JWTs; refresh tokens are rotated uuids kept in the database.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// issueTokens mints a fresh token pair for the user, dropping any refresh
// token previously issued to them.
func (uc *UserController) issueTokens(user models.UserRecord) (access string, refresh string, err error) {
	jwt, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	refresh = uuid.NewString()
	if err := uc.DB.Where("user_id = ?", user.ID).Delete(&models.RefreshTokenRecord{}).Error; err != nil {
		return "", "", err
	}
	if err := uc.DB.Create(&models.RefreshTokenRecord{Token: refresh, UserID: user.ID}).Error; err != nil {
		return "", "", err
	}

	// The access token travels with its scheme, matching the remote service.
	return "Bearer " + jwt, refresh, nil
}

func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("email, password and name are required"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.UserRecord{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("user already exists"))
		return
	}

	access, refresh, err := uc.issueTokens(user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("new user registered: %s", user.Email)
	utils.RespondOK(c, http.StatusOK, gin.H{
		"user":         user.ToUser(),
		"accessToken":  access,
		"refreshToken": refresh,
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.UserRecord
	if err := uc.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	access, refresh, err := uc.issueTokens(user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"user":         user.ToUser(),
		"accessToken":  access,
		"refreshToken": refresh,
	})
}

type tokenRequest struct {
	Token string `json:"token"`
}

// Refresh rotates a valid refresh token into a fresh pair.
func (uc *UserController) Refresh(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("token is required"))
		return
	}

	var rec models.RefreshTokenRecord
	if err := uc.DB.Where("token = ?", req.Token).First(&rec).Error; err != nil {
		utils.RespondError(c, http.StatusForbidden, errors.New("invalid refresh token"))
		return
	}

	var user models.UserRecord
	if err := uc.DB.First(&user, rec.UserID).Error; err != nil {
		utils.RespondError(c, http.StatusForbidden, errors.New("invalid refresh token"))
		return
	}

	access, refresh, err := uc.issueTokens(user)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
	})
}

// Logout invalidates the presented refresh token.
func (uc *UserController) Logout(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("token is required"))
		return
	}

	uc.DB.Where("token = ?", req.Token).Delete(&models.RefreshTokenRecord{})
	utils.RespondOK(c, http.StatusOK, gin.H{
		"message": "successful logout",
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}
	utils.RespondOK(c, http.StatusOK, gin.H{"user": user.ToUser()})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, ok := uc.currentUser(c)
	if !ok {
		return
	}

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		user.Password = string(hashed)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"user": user.ToUser()})
}

// currentUser resolves the record behind the middleware-validated token.
func (uc *UserController) currentUser(c *gin.Context) (models.UserRecord, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return models.UserRecord{}, false
	}

	var user models.UserRecord
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return models.UserRecord{}, false
	}
	return user, true
}
