package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/strongerfit/teamup-relay/config"
)

func (s *srv) loadConfig() error {
	// A missing .env file is fine; production deployments configure the
	// environment directly.
	_ = godotenv.Load()

	s.configs = &config.Configs{
		Env: getEnv("ENV", "production"),
		Server: config.ServerConfigs{
			Host: os.Getenv("HOST"),
			Port: getEnv("PORT", "3000"),
		},
		TeamUp: config.TeamUpConfigs{
			APIURL:       getEnv("TEAMUP_API_URL", "https://goteamup.com/api/business/v1"),
			AuthURL:      getEnv("TEAMUP_AUTH_URL", "https://goteamup.com/api/auth/authorize"),
			TokenURL:     getEnv("TEAMUP_TOKEN_URL", "https://goteamup.com/api/auth/access_token"),
			ClientID:     os.Getenv("TEAMUP_CLIENT_ID"),
			ClientSecret: os.Getenv("TEAMUP_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("TEAMUP_REDIRECT_URI"),
			BusinessID:   os.Getenv("TEAMUP_BUSINESS_ID"),
			MembershipID: os.Getenv("TEAMUP_MEMBERSHIP_ID"),
		},
		HighLevel: config.HighLevelConfigs{
			APIURL:       getEnv("HL_API_URL", "https://rest.gohighlevel.com/v2"),
			PrivateToken: os.Getenv("HL_PRIVATE_TOKEN"),
		},
		Redis: config.RedisConfigs{
			Addr: os.Getenv("REDIS_ADDR"),
		},
	}

	// Fail fast on deployment mistakes instead of failing per-request.
	var missing []string
	for name, value := range map[string]string{
		"TEAMUP_CLIENT_ID":     s.configs.TeamUp.ClientID,
		"TEAMUP_CLIENT_SECRET": s.configs.TeamUp.ClientSecret,
		"TEAMUP_REDIRECT_URI":  s.configs.TeamUp.RedirectURI,
		"TEAMUP_BUSINESS_ID":   s.configs.TeamUp.BusinessID,
		"HL_PRIVATE_TOKEN":     s.configs.HighLevel.PrivateToken,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s",
			strings.Join(missing, ", "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
