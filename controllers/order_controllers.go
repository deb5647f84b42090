package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/stellar-client/live"
	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// OrderController implements order creation, the public feed, by-number
// lookup and the authenticated user's order history.
type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type createOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

// CreateOrder accepts the ordered identity list as submitted (bun
// bookending the fillings), assigns the sequential number and display name,
// and broadcasts the new order on the live hub.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Ingredients) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("ingredient ids must be provided"))
		return
	}

	var records []models.IngredientRecord
	if err := oc.DB.Where("public_id IN ?", req.Ingredients).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	byID := make(map[string]models.IngredientRecord, len(records))
	for _, r := range records {
		byID[r.PublicID] = r
	}
	for _, id := range req.Ingredients {
		if _, ok := byID[id]; !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown ingredient id: "+id))
			return
		}
	}

	ids, err := json.Marshal(req.Ingredients)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	record := models.OrderRecord{
		PublicID:      uuid.NewString(),
		UserID:        userID.(uint),
		Status:        models.OrderStatusDone,
		Name:          orderName(req.Ingredients, byID),
		IngredientIDs: string(ids),
	}
	if err := oc.DB.Create(&record).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order := record.ToOrder()
	live.BroadcastOrderCreated(order)
	utils.InfoLogger.Printf("order %d created: %s", order.Number, order.Name)

	utils.RespondOK(c, http.StatusOK, gin.H{
		"name":  order.Name,
		"order": order,
	})
}

// orderName derives a display name from the distinctive ingredients, the
// way the remote service names burgers.
func orderName(ids []string, byID map[string]models.IngredientRecord) string {
	var parts []string
	seen := make(map[string]bool)
	for _, id := range ids {
		rec := byID[id]
		if seen[rec.PublicID] {
			continue
		}
		seen[rec.PublicID] = true
		parts = append(parts, strings.TrimSuffix(rec.Name, " bun"))
	}
	return strings.Join(parts, " ") + " burger"
}

// GetFeed serves the global feed with running totals, newest first.
func (oc *OrderController) GetFeed(c *gin.Context) {
	var records []models.OrderRecord
	if err := oc.DB.Order("id desc").Limit(50).Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total int64
	oc.DB.Model(&models.OrderRecord{}).Count(&total)

	var totalToday int64
	startOfDay := time.Now().Truncate(24 * time.Hour)
	oc.DB.Model(&models.OrderRecord{}).Where("created_at >= ?", startOfDay).Count(&totalToday)

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.ToOrder())
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"orders":     orders,
		"total":      total,
		"totalToday": totalToday,
	})
}

// GetOrderByNumber serves a result set of zero or one orders. An unknown
// number is an empty set with a success envelope; deciding that this is a
// not-found failure is the client's business.
func (oc *OrderController) GetOrderByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order number must be an integer"))
		return
	}

	orders := []models.Order{}
	var record models.OrderRecord
	if err := oc.DB.First(&record, number).Error; err == nil {
		orders = append(orders, record.ToOrder())
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"orders": orders})
}

// GetUserOrders serves the authenticated user's order history.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var records []models.OrderRecord
	if err := oc.DB.Where("user_id = ?", userID).Order("id desc").Find(&records).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	orders := make([]models.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.ToOrder())
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"orders": orders})
}
