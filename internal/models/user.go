package models

// DirectoryUser est la forme renvoyée par /api/users pour le tableau de bord.
// PhotoURL est nil quand ni le profil ni le provider google.com n'ont de photo.
type DirectoryUser struct {
	UID         string  `json:"uid"`
	DisplayName string  `json:"displayName"`
	Email       string  `json:"email"`
	PhotoURL    *string `json:"photoURL"`
}
