package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata, injected by cmd/churchtools.
var (
	version   = "dev"
	commit    string
	buildDate string
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionShort bool

// SetBuildInfo records the version, VCS commit and build date of the binary.
// Empty values keep the current ones; commit and date then fall back to the
// VCS stamp the Go toolchain embeds.
func SetBuildInfo(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the version of churchtools together with the commit and date it
was built from and the Go runtime. Use --short for the bare version.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}

		c, d := commit, buildDate
		if c == "" || d == "" {
			vc, vd := vcsStamp()
			if c == "" {
				c = vc
			}
			if d == "" {
				d = vd
			}
		}

		cmd.Printf("churchtools version %s\n", version)
		if c != "" {
			cmd.Printf("  commit: %s\n", c)
		}
		if d != "" {
			cmd.Printf("  built:  %s\n", d)
		}
		cmd.Printf("  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

// vcsStamp returns the revision and commit time embedded by go build.
// A modified working tree is marked with a "-dirty" suffix.
func vcsStamp() (revision, date string) {
	info, ok := readBuildInfo()
	if !ok {
		return "", ""
	}
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			date = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty && revision != "" {
		revision += "-dirty"
	}
	return revision, date
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version")
	rootCmd.AddCommand(versionCmd)
}
