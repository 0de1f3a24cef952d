package config

import "time"

// defaultConfig returns the lowest-priority configuration source. It is merged
// last, so each value only fills fields no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionCookieName: "sessionId",
		},
		Storage: Storage{
			Files: Files{DataDir: "."},
		},
		Server: Server{
			HTTPAddress:     "localhost:3000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			MailgunBaseURL: "https://api.mailgun.net",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			NotifierWorkers:   4,
			NotifierQueueSize: 256,
			SendTimeout:       15 * time.Second,
		},
	}
}
