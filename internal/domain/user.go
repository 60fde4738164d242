package domain

type User struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
	PassHash string   `json:"-"`
}

// to iterate thru layers: handler -> service -> storage
type UserRegistrationData struct {
	Username Username
	Password Password
	Fullname string
}

// AddedUser is what the registration endpoint returns; no credentials leak out.
type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}
