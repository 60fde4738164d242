package utils

import (
	"unicode"
	"unicode/utf8"

	"forumapi/internal/errors"
)

func isUsernameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

type UserValidator struct{}

func (v *UserValidator) Username(username string) error {
	if username == "" {
		return errors.NewValidation("harus mengirimkan username")
	}
	if utf8.RuneCountInString(username) > 50 {
		return errors.NewValidation("tidak dapat membuat user baru karena karakter username melebihi batas limit")
	}
	for _, r := range username {
		if !isUsernameChar(r) {
			return errors.NewValidation("tidak dapat membuat user baru karena username mengandung karakter terlarang")
		}
	}
	return nil
}

func (v *UserValidator) Password(password string) error {
	if password == "" {
		return errors.NewValidation("harus mengirimkan password")
	}
	return nil
}

type ThreadValidator struct{}

func (v *ThreadValidator) Title(title string) error {
	if title == "" {
		return errors.NewValidation("judul thread tidak boleh kosong")
	}
	if utf8.RuneCountInString(title) > 150 {
		return errors.NewValidation("judul thread melebihi batas limit")
	}
	return nil
}

func (v *ThreadValidator) Body(body string) error {
	if body == "" {
		return errors.NewValidation("isi thread tidak boleh kosong")
	}
	if utf8.RuneCountInString(body) > 10_000 {
		return errors.NewValidation("isi thread melebihi batas limit")
	}
	return nil
}

type ContentValidator struct{}

func (v *ContentValidator) Content(content string) error {
	if content == "" {
		return errors.NewValidation("content tidak boleh kosong")
	}
	if utf8.RuneCountInString(content) > 10_000 {
		return errors.NewValidation("content melebihi batas limit")
	}
	return nil
}
