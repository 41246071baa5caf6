package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kisprefs/internal/prefs"
	"kisprefs/internal/telemetry"
	"kisprefs/internal/ui"
)

// debugEnv names a log file; when set, log output goes there instead of
// being discarded under the alt screen.
const debugEnv = "KISPREFS_DEBUG"

var (
	prefsPath  string
	openScreen string
)

var rootCmd = &cobra.Command{
	Use:   "kisprefs",
	Short: "Edit client preferences in the terminal",
	Long: `Full-screen editor for the client's preference file: panel colors,
the default server and auto-connect flag, and which network and client list
columns are shown in what order.

Examples:
  kisprefs                         # open the menu
  kisprefs --open colors           # jump straight to the color list
  kisprefs --prefs ./prefs.toml    # edit a specific file
  kisprefs get default_host        # print one preference`,
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	def, err := prefs.DefaultPath()
	if err != nil {
		def = ""
	}
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", def, "preference file (env "+prefs.PathEnv+")")
	rootCmd.Flags().StringVar(&openScreen, "open", "", "screen to open on start: colors, server, netlist, clientlist")
}

// openStore loads the preference file named by --prefs.
func openStore(ctx context.Context) (*prefs.FileStore, error) {
	if prefsPath == "" {
		return nil, fmt.Errorf("no preference file: pass --prefs or set %s", prefs.PathEnv)
	}
	store := prefs.NewFileStore(prefsPath, prefs.WithDefaults(prefs.Defaults))
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var start ui.Screen
	hasStart := false
	if openScreen != "" {
		s, ok := ui.ParseScreen(openScreen)
		if !ok {
			return fmt.Errorf("unknown screen %q", openScreen)
		}
		start, hasStart = s, true
	}

	if path := os.Getenv(debugEnv); path != "" {
		f, err := tea.LogToFile(path, "kisprefs")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			log.Printf("telemetry: shutdown: %v", serr)
		}
	}()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	app := ui.NewAppModel(store)
	if hasStart {
		// The panel's Init runs with the program's.
		app.Open(start)
	}
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return store.Save(ctx)
}
