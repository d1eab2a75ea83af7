// Package commands defines the agencysite CLI.
//
// Commands
//
//   - serve    Run the site with its live sections
//   - link     Print the WhatsApp link the contact form would open
//   - version  Print build information
//
// The root command loads the configuration before any subcommand runs:
// defaults (or development defaults with --dev), then the --config file.
// Subcommand flags override individual settings.
package commands
