package config

type Configs struct {
	Env string

	Server    ServerConfigs
	TeamUp    TeamUpConfigs
	HighLevel HighLevelConfigs
	Redis     RedisConfigs
}

type ServerConfigs struct {
	Host string
	Port string
}

type TeamUpConfigs struct {
	APIURL   string
	AuthURL  string
	TokenURL string

	ClientID     string
	ClientSecret string
	RedirectURI  string

	// BusinessID is sent with every business API call.
	BusinessID string

	// MembershipID is the default membership plan used when the caller of
	// add-membership does not supply one. Optional.
	MembershipID string
}

type HighLevelConfigs struct {
	APIURL string

	// PrivateToken is a static credential, independent of the TeamUp OAuth
	// token.
	PrivateToken string
}

type RedisConfigs struct {
	// Addr enables the durable token store when non-empty.
	Addr string
}
