package options

import (
	"fmt"

	"github.com/spf13/pflag"

	serverconfig "github.com/seqcast/seqcast/pkg/server/config"
)

// Options hold the command-line options of the seqcast api server.
type Options struct {
	// Mode is the gin run mode: debug, release or test.
	Mode string
	// BindAddress is the address the api server binds to.
	BindAddress string
	// BindPort is the port the api server listens on.
	BindPort int

	EnableProfiling bool
	EnableMetrics   bool
}

// NewOptions builds the default options.
func NewOptions() *Options {
	return &Options{
		Mode:          "release",
		BindAddress:   "0.0.0.0",
		BindPort:      8082,
		EnableMetrics: true,
	}
}

// Complete completes all the required options.
func (o *Options) Complete() error {
	return nil
}

// Validate all required options.
func (o *Options) Validate() []error {
	var errs []error
	if o.Mode != "debug" && o.Mode != "release" && o.Mode != "test" {
		errs = append(errs, fmt.Errorf("mode must be one of debug, release, test, got %q", o.Mode))
	}
	if o.BindPort <= 0 || o.BindPort > 65535 {
		errs = append(errs, fmt.Errorf("bind-port must be within [1, 65535], got %d", o.BindPort))
	}
	return errs
}

// ApplyTo fills in the server config from the options.
func (o *Options) ApplyTo(cfg *serverconfig.Config) {
	cfg.Mode = o.Mode
	cfg.BindAddress = o.BindAddress
	cfg.BindPort = o.BindPort
	cfg.EnableProfiling = o.EnableProfiling
	cfg.EnableMetrics = o.EnableMetrics
}

// AddFlags adds flags to the specified FlagSet.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.Mode, "mode", o.Mode, "The gin run mode, one of debug, release, test.")
	flags.StringVar(&o.BindAddress, "bind-address", o.BindAddress, "The address the api server binds to.")
	flags.IntVar(&o.BindPort, "bind-port", o.BindPort, "The port the api server listens on.")
	flags.BoolVar(&o.EnableProfiling, "profiling", o.EnableProfiling, "Enable the pprof endpoints.")
	flags.BoolVar(&o.EnableMetrics, "enable-metrics", o.EnableMetrics, "Expose prometheus metrics on the api server.")
}
