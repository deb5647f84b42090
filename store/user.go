package store

import (
	"context"

	"github.com/yeremiapane/stellar-client/models"
	"github.com/yeremiapane/stellar-client/utils"
)

// Audit-trail tags recorded in lastAction so callers can tell why the
// session state last changed.
const (
	ActionAuthSuccess      = "authSuccess"
	ActionProfileLoaded    = "profileLoaded"
	ActionProfileUpdated   = "profileUpdated"
	ActionSignOut          = "signOut"
	ActionOrdersLoaded     = "ordersLoaded"
	ActionOrdersLoadFailed = "ordersLoadFailed"
	ActionFailed           = "actionFailed"
)

// Fallback messages for the session lifecycles.
const (
	defaultAuthError   = "operation failed"
	defaultOrdersError = "order load failed"
)

// authOp tags which of the coalesced identity operations is in flight. The
// four of them share one loading flag and one error field; the operation
// kind is recorded alongside so readers can still tell them apart.
type authOp string

const (
	opLogin         authOp = "login"
	opRegister      authOp = "register"
	opProfileLoad   authOp = "profileLoad"
	opProfileUpdate authOp = "profileUpdate"
)

// userState is the session slice: authentication status, profile, and the
// user's own order history. The history lifecycle keeps its own loading
// flag because it is not an identity-changing operation.
type userState struct {
	user             *models.User
	isAuthenticated  bool
	isLoading        bool
	pendingOp        authOp
	orders           []models.Order
	isFetchingOrders bool
	errorMessage     string
	lastAction       string
}

// beginAuthOp is the shared pending transition for the four coalesced
// identity operations.
func (u *userState) beginAuthOp(op authOp) {
	u.isLoading = true
	u.pendingOp = op
	u.errorMessage = ""
}

// failAuthOp is the shared rejected transition.
func (u *userState) failAuthOp(message string) {
	u.isLoading = false
	u.pendingOp = ""
	u.errorMessage = message
	u.lastAction = ActionFailed
}

// Login authenticates with the remote service. On success both tokens are
// written to the credential store and the session becomes authenticated.
func (s *Store) Login(ctx context.Context, data models.LoginData) error {
	return s.authenticate(ctx, opLogin, func() (models.AuthSession, error) {
		return s.api.Login(ctx, data)
	})
}

// Register creates an account; a successful registration signs the user in
// exactly like a login.
func (s *Store) Register(ctx context.Context, data models.RegisterData) error {
	return s.authenticate(ctx, opRegister, func() (models.AuthSession, error) {
		return s.api.Register(ctx, data)
	})
}

func (s *Store) authenticate(ctx context.Context, op authOp, call func() (models.AuthSession, error)) error {
	s.mu.Lock()
	s.user.beginAuthOp(op)
	s.mu.Unlock()

	session, err := call()
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.user.failAuthOp(errMessage(err, defaultAuthError))
		return err
	}

	if terr := s.tokens.SetTokens(session.AccessToken, session.RefreshToken); terr != nil {
		utils.ErrorLogger.Printf("failed to persist tokens: %v", terr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user := session.User
	s.user.user = &user
	s.user.isAuthenticated = true
	s.user.isLoading = false
	s.user.pendingOp = ""
	s.user.errorMessage = ""
	s.user.lastAction = ActionAuthSuccess
	return nil
}

// FetchProfile loads the profile for the session behind the stored tokens.
// A successful load marks the session authenticated (session restore).
func (s *Store) FetchProfile(ctx context.Context) error {
	s.mu.Lock()
	s.user.beginAuthOp(opProfileLoad)
	s.mu.Unlock()

	user, err := s.api.GetUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user.failAuthOp(errMessage(err, defaultAuthError))
		return err
	}
	s.user.user = &user
	s.user.isAuthenticated = true
	s.user.isLoading = false
	s.user.pendingOp = ""
	s.user.lastAction = ActionProfileLoaded
	return nil
}

// UpdateProfile patches the profile. The authenticated flag is untouched.
func (s *Store) UpdateProfile(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	s.user.beginAuthOp(opProfileUpdate)
	s.mu.Unlock()

	user, err := s.api.UpdateUser(ctx, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user.failAuthOp(errMessage(err, defaultAuthError))
		return err
	}
	s.user.user = &user
	s.user.isLoading = false
	s.user.pendingOp = ""
	s.user.lastAction = ActionProfileUpdated
	return nil
}

// SignOut clears the session eagerly: user, authenticated flag and both
// tokens are dropped before the remote call resolves, so logout feels
// instantaneous and a failed remote sign-out never leaves stale
// credentials visible. A remote failure is logged, returned, and not
// rolled back.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.user.user = nil
	s.user.isAuthenticated = false
	s.user.isLoading = false
	s.user.pendingOp = ""
	s.user.lastAction = ActionSignOut
	s.mu.Unlock()

	// The remote call still needs the refresh token to invalidate it, so
	// the credential store is cleared right after, success or not.
	err := s.api.Logout(ctx)
	if terr := s.tokens.ClearTokens(); terr != nil {
		utils.ErrorLogger.Printf("failed to clear tokens: %v", terr)
	}
	if err != nil {
		utils.ErrorLogger.Printf("remote sign-out failed (not rolled back): %v", err)
	}
	return err
}

// FetchUserOrders loads the user's own order history. Deliberately not
// coalesced with the identity operations.
func (s *Store) FetchUserOrders(ctx context.Context) error {
	s.mu.Lock()
	s.user.isFetchingOrders = true
	s.user.errorMessage = ""
	s.mu.Unlock()

	orders, err := s.api.GetUserOrders(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.isFetchingOrders = false
	if err != nil {
		s.user.errorMessage = errMessage(err, defaultOrdersError)
		s.user.lastAction = ActionOrdersLoadFailed
		return err
	}
	s.user.orders = orders
	s.user.lastAction = ActionOrdersLoaded
	return nil
}

// ResetUserError drops the coalesced session error.
func (s *Store) ResetUserError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.errorMessage = ""
}

// TrackAction records an arbitrary audit tag in lastAction.
func (s *Store) TrackAction(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.lastAction = tag
}

// User returns a copy of the current profile, or nil when signed out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.user == nil {
		return nil
	}
	cp := *s.user.user
	return &cp
}

// UserName returns the profile name, or "" when signed out.
func (s *Store) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.user == nil {
		return ""
	}
	return s.user.user.Name
}

// UserEmail returns the profile email, or "" when signed out.
func (s *Store) UserEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.user == nil {
		return ""
	}
	return s.user.user.Email
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.isAuthenticated
}

// IsUserLoading reports whether any of the coalesced identity operations is
// in flight.
func (s *Store) IsUserLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.isLoading
}

// PendingAuthOp names the identity operation currently in flight, or "".
func (s *Store) PendingAuthOp() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.user.pendingOp)
}

// UserOrders returns a copy of the user's order history.
func (s *Store) UserOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.user.orders)
}

func (s *Store) IsFetchingOrders() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.isFetchingOrders
}

func (s *Store) UserError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.errorMessage
}

// LastAction returns the audit tag of the most recent session transition.
func (s *Store) LastAction() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.lastAction
}
