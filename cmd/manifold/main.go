package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mdsn/manifold/internal/config"
	"github.com/mdsn/manifold/internal/debuglog"
	"github.com/mdsn/manifold/internal/render"
	"github.com/mdsn/manifold/internal/session"
	"github.com/mdsn/manifold/internal/tui"
)

// Version is set at build time
var Version = "dev"

var (
	configPath string
	sectionArg string
)

var rootCmd = &cobra.Command{
	Use:   "manifold [page...]",
	Short: "A tabbed terminal pager for man pages",
	Long: `manifold is a tabbed terminal pager for man pages.

With no arguments it starts empty; open pages with the :man command.
With one argument it opens that page. With several arguments the first
is treated as a section when any of the remaining pages resolves under
it, otherwise every argument opens as its own page.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE:    run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".config", "manifold", "config.toml")
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.Flags().StringVarP(&sectionArg, "section", "s", "", "open all pages in this section")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := debuglog.ParseLogLevel(cfg.Log.Level)
	if env := os.Getenv("MANIFOLD_DEBUG"); env != "" {
		level = debuglog.ParseLogLevel(env)
	}
	if err := debuglog.Setup(level, cfg.Log.File); err != nil {
		return err
	}
	defer debuglog.Close()

	renderer, prober := buildRenderer(cfg)
	sess := session.New(prober)

	topics, section, err := resolveStartupArgs(args, sectionArg, prober)
	if err != nil {
		return fmt.Errorf("classifying arguments: %w", err)
	}

	app := tui.NewApp(sess, renderer, cfg)

	if len(topics) > 0 {
		// Open at a provisional geometry; the first WindowSizeMsg
		// re-renders at the real one. A fatal renderer fault here
		// still aborts startup.
		if err := sess.OpenPages(topics, section, renderer, 80, 24); err != nil {
			return err
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if err := app.Err(); err != nil {
		return err
	}
	return nil
}

// buildRenderer picks the renderer from config. The prober shares the
// man binary so classification agrees with rendering.
func buildRenderer(cfg *config.Config) (render.Renderer, render.SectionProber) {
	switch cfg.Render.Source {
	case "markdown":
		return render.NewMarkdownRenderer(cfg.Render.DocsDir), docsProber{dir: cfg.Render.DocsDir}
	default:
		return render.NewManRenderer(cfg.Render.ManPath), render.NewManProber(cfg.Render.ManPath)
	}
}

// docsProber answers section probes against the markdown docs layout,
// where a section is a subdirectory.
type docsProber struct {
	dir string
}

func (p docsProber) ExistsInSection(section, page string) (bool, error) {
	if p.dir == "" {
		return false, nil
	}
	info, err := os.Stat(filepath.Join(p.dir, section, page+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// resolveStartupArgs applies the same classification to startup
// arguments as the :man command: one token opens directly, two or more
// go through section detection unless --section pins it.
func resolveStartupArgs(args []string, section string, prober render.SectionProber) ([]string, string, error) {
	if len(args) == 0 {
		return nil, "", nil
	}
	if section != "" || len(args) == 1 {
		return args, section, nil
	}
	interp, err := render.ClassifyArgs(prober, args)
	if err != nil {
		return nil, "", err
	}
	return interp.Pages, interp.Section, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
