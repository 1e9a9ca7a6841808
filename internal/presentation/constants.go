package presentation

const (
	AuthKey    = "Authorization"
	AuthScheme = "Bearer"

	KeyAdminID     = "admin_id"
	KeyTokenID     = "token_id"
	KeyTokenExpiry = "token_expiry"
)
