package hue

import "fmt"

// User identifies a session against a single bridge: the bridge address and
// the API user id issued to us when the bridge was paired.
type User struct {
	IP     string
	UserID string
}

func NewUser(ip string, userID string) User {
	return User{IP: ip, UserID: userID}
}

// URL is the base url every v1 request is made relative to.
func (u User) URL() string {
	return fmt.Sprintf("http://%s/api/%s", u.IP, u.UserID)
}
