package service

import (
	"forumapi/internal/domain"
	"forumapi/internal/errors"
	"forumapi/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(registrationData domain.UserRegistrationData) (domain.AddedUser, error)
	Login(username domain.Username, password domain.Password) (string, error)
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	validator UserValidator
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.AddedUser, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type UserValidator interface {
	Username(username domain.Username) error
	Password(password domain.Password) error
}

func NewAuth(storage AuthStorage, jwt Jwt, validator UserValidator) *Auth {
	return &Auth{storage, jwt, validator}
}

func (a *Auth) Register(registrationData domain.UserRegistrationData) (domain.AddedUser, error) {
	if err := a.validator.Username(registrationData.Username); err != nil {
		return domain.AddedUser{}, err
	}
	if err := a.validator.Password(registrationData.Password); err != nil {
		return domain.AddedUser{}, err
	}
	if registrationData.Fullname == "" {
		return domain.AddedUser{}, errors.NewValidation("harus mengirimkan fullname")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(registrationData.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.AddedUser{}, err
	}

	return a.storage.SaveUser(domain.User{
		Username: registrationData.Username,
		Fullname: registrationData.Fullname,
		PassHash: string(passHash),
	})
}

// Login checks the credentials and returns an access token. Not-found and
// wrong-password both come back as the same 401 to not leak existing users.
func (a *Auth) Login(username domain.Username, password domain.Password) (string, error) {
	user, err := a.storage.UserByUsername(username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.NewAuthentication("kredensial yang Anda masukkan salah")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", errors.NewAuthentication("kredensial yang Anda masukkan salah")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}
