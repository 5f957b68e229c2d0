package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4310,
			Host: "localhost",
		},
		Market: MarketConfig{
			BaseURL:        "https://stooq.com/q/d/l/",
			DefaultSuffix:  ".us",
			TimeoutSeconds: 15,
		},
		Mail: MailConfig{
			Recipient: "research-notes@cordobarg.com",
			CC: map[string]string{
				"Equity Research": "equity-desk@cordobarg.com",
				"General":         "research-desk@cordobarg.com",
			},
		},
		Document: DocumentConfig{
			Organization: "Cordoba Research Group",
			FooterText:   "Cordoba Research Group Internal Information",
			BodyFont:     "Book Antiqua",
			BodySize:     20,
		},
		Session: SessionConfig{
			TTLMinutes: 60,
			MaxEntries: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
