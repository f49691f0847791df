package config

import (
	"os"
	"strconv"
)

// MailConfig holds the SMTP settings for follower notification mail.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SocialConfig holds the X/Twitter API credentials for the announcement
// post made when an article is approved. Posting stays off unless
// TWITTER_ENABLED is set and all four credential values are present.
type SocialConfig struct {
	Enabled      bool
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
	Prefix       string
	// SiteBaseURL is prepended to the article path to build the canonical
	// link included in the post.
	SiteBaseURL string
}

func LoadMailConfig() MailConfig {
	port, err := strconv.Atoi(envOr("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return MailConfig{
		Host:     envOr("SMTP_HOST", "localhost"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     envOr("MAIL_FROM", "news@portal.com"),
	}
}

func LoadSocialConfig() SocialConfig {
	enabled, _ := strconv.ParseBool(os.Getenv("TWITTER_ENABLED"))
	return SocialConfig{
		Enabled:      enabled,
		APIKey:       os.Getenv("TWITTER_API_KEY"),
		APISecret:    os.Getenv("TWITTER_API_SECRET"),
		AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
		Prefix:       envOr("TWITTER_PREFIX", "New article:"),
		SiteBaseURL:  envOr("SITE_BASE_URL", "https://localhost:8080"),
	}
}
