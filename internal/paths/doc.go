// Package paths resolves the directories defcheck reads from.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance, so the
// user configuration lives in $XDG_CONFIG_HOME/defcheck on Linux and the
// platform equivalent elsewhere.
//
//	paths.ConfigDir()  // ~/.config/defcheck
//	paths.ConfigFile() // ~/.config/defcheck/config.yaml
package paths
