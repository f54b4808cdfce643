package cli

import "htgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	ProjectPath string
	Skeleton    string
	Interface   string
	Output      string
	Manifest    string
	Workers     int
	NameFilter  string
	Check       bool
	Stdout      bool
	Table       bool
	Verbose     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:  f.ConfigFile,
		ProjectPath: f.ProjectPath,
		Skeleton:    f.Skeleton,
		Interface:   f.Interface,
		Output:      f.Output,
		Manifest:    f.Manifest,
		Workers:     f.Workers,
		NameFilter:  f.NameFilter,
		Check:       f.Check,
		Stdout:      f.Stdout,
		Table:       f.Table,
		Verbose:     f.Verbose,
	}
}
