package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version           string `json:"version"`
		SessionCookieName string `json:"session_cookie_name"`
		SecureCookies     bool   `json:"secure_cookies"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			DataDir string `json:"data_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		MailgunAPIKey  string   `json:"mailgun_api_key"`
		MailgunDomain  string   `json:"mailgun_domain"`
		MailgunBaseURL string   `json:"mailgun_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		NotifierWorkers   int      `json:"notifier_workers"`
		NotifierQueueSize int      `json:"notifier_queue_size"`
		SendTimeout       Duration `json:"send_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:           jsonCfg.App.Version,
			SessionCookieName: jsonCfg.App.SessionCookieName,
			SecureCookies:     jsonCfg.App.SecureCookies,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				DataDir: jsonCfg.Storage.Files.DataDir,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			MailgunAPIKey:  jsonCfg.Adapter.MailgunAPIKey,
			MailgunDomain:  jsonCfg.Adapter.MailgunDomain,
			MailgunBaseURL: jsonCfg.Adapter.MailgunBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			NotifierWorkers:   jsonCfg.Workers.NotifierWorkers,
			NotifierQueueSize: jsonCfg.Workers.NotifierQueueSize,
			SendTimeout:       time.Duration(jsonCfg.Workers.SendTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
