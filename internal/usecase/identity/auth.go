package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/auth"
	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/identity"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
	"github.com/odremano/OBProyect/internal/validators"
)

// ======================================================
// USE CASE — cuentas y sesión
// ======================================================

type RegisterNegocioInput struct {
	NegocioName string `json:"negocio_name"`
	Slug        string `json:"slug"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone_number"`
}

type RegisterClientInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone_number"`
}

type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Auth struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clock  clock.Clock
	secret string
}

func NewAuth(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	clk clock.Clock,
	secret string,
) *Auth {
	return &Auth{repo: repo, audit: auditor, clock: clk, secret: secret}
}

// RegisterNegocio da de alta un negocio con su primer administrador.
func (uc *Auth) RegisterNegocio(
	ctx context.Context,
	in RegisterNegocioInput,
) (*Session, error) {

	if err := validateCredentials(in.Username, in.Email, in.Password); err != nil {
		return nil, err
	}
	if in.NegocioName == "" || in.Slug == "" {
		return nil, httperr.ErrBusiness("negocio_name_required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	negocio := &models.Negocio{
		Name: in.NegocioName,
		Slug: strings.ToLower(in.Slug),
	}
	user := &models.User{
		Username:     strings.ToLower(in.Username),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         models.RoleAdministrador,
		IsActive:     true,
	}
	member := &models.Membership{
		Role:     models.RoleAdministrador,
		IsActive: true,
	}

	if err := uc.repo.RegisterNegocio(ctx, negocio, user, member); err != nil {
		return nil, httperr.ErrBusiness("registration_failed")
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocio.ID,
		UserID:    &user.ID,
		Action:    "negocio_registered",
		Entity:    "negocio",
		EntityID:  &negocio.ID,
	})

	return uc.newSession(user)
}

// RegisterClient da de alta un cliente dentro de un negocio existente.
func (uc *Auth) RegisterClient(
	ctx context.Context,
	negocioID uint,
	in RegisterClientInput,
) (*Session, error) {

	if err := validateCredentials(in.Username, in.Email, in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		NegocioID:    negocioID,
		Username:     strings.ToLower(in.Username),
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         models.RoleCliente,
		IsActive:     true,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, httperr.ErrBusiness("registration_failed")
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		UserID:    &user.ID,
		Action:    "client_registered",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	return uc.newSession(user)
}

// Login valida credenciales. Usuario inexistente y contraseña errónea
// responden lo mismo para no filtrar cuáles cuentas existen.
func (uc *Auth) Login(
	ctx context.Context,
	username, password string,
) (*Session, error) {

	user, err := uc.repo.GetUserByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if !user.IsActive {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return uc.newSession(user)
}

func (uc *Auth) ChangePassword(
	ctx context.Context,
	userID uint,
	current, next string,
) error {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return httperr.ErrBusiness("user_not_found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return httperr.ErrBusiness("invalid_credentials")
	}
	if len(next) < 8 {
		return httperr.ErrBusiness("weak_password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := uc.repo.UpdateUser(ctx, user); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: user.NegocioID,
		UserID:    &user.ID,
		Action:    "password_changed",
		Entity:    "user",
		EntityID:  &user.ID,
	})
	return nil
}

func (uc *Auth) newSession(user *models.User) (*Session, error) {
	token, err := auth.Generate(uc.secret, user.ID, user.NegocioID, user.Role, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func validateCredentials(username, email, password string) error {
	if username == "" {
		return httperr.ErrBusiness("username_required")
	}
	if !validators.ValidEmail(email) {
		return httperr.ErrBusiness("invalid_email")
	}
	if len(password) < 8 {
		return httperr.ErrBusiness("weak_password")
	}
	return nil
}
