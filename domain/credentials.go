package domain

// Credentials is the access/refresh token pair issued at login and rotated
// wholesale on renewal. The pair is only ever stored or replaced as a unit;
// a lone access token with no means to renew it is an invalid state.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Valid reports whether both tokens are present.
func (c Credentials) Valid() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// TokenGrant is the normalized shape of a login or refresh response.
type TokenGrant struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// Credentials extracts the storable pair from the grant.
func (g TokenGrant) Credentials() Credentials {
	return Credentials{
		AccessToken:  g.AccessToken,
		RefreshToken: g.RefreshToken,
	}
}
