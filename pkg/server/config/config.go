package config

type Config struct {
	Mode        string `json:"mode"`
	BindAddress string `json:"bindAddress"`
	BindPort    int    `json:"bindPort"`

	EnableProfiling bool `json:"profiling"`
	EnableMetrics   bool `json:"enableMetrics"`
}

func NewServerConfig() *Config {
	return &Config{
		Mode:          "release",
		BindAddress:   "0.0.0.0",
		BindPort:      8082,
		EnableMetrics: true,
	}
}
