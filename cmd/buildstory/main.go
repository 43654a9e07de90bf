package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/zhang-liz/buildstory/internal/assembler"
	"github.com/zhang-liz/buildstory/internal/config"
	"github.com/zhang-liz/buildstory/internal/content"
	"github.com/zhang-liz/buildstory/internal/copywriter"
	"github.com/zhang-liz/buildstory/internal/persona"
	"github.com/zhang-liz/buildstory/internal/replay"
	"github.com/zhang-liz/buildstory/internal/store"
	"github.com/zhang-liz/buildstory/internal/strategist"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "buildstory",
	Short:   "Persona-targeted content experiments",
	Long:    "buildstory classifies visitors into audience segments and assembles pages from per-slot content variants, learning which variant converts best per segment.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			return err
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(performanceCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(rebuildCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("buildstory", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/buildstory/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to set the database path and copywriter address.")
		return nil
	},
}

// --- classify command ---

var (
	classifyReferrer  string
	classifyUserAgent string
	classifyQuery     string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a visitor's signals into an audience segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle := persona.BundleFromRequest(classifyReferrer, classifyUserAgent, classifyQuery, time.Now())
		cls := persona.Classify(bundle)

		fmt.Printf("Segment:    %s\n", cls.Segment)
		fmt.Printf("Confidence: %.2f\n", cls.Confidence)
		fmt.Println("Rationale:")
		for _, r := range cls.Rationale {
			fmt.Printf("  - %s\n", r)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyReferrer, "referrer", "", "Referrer URL")
	classifyCmd.Flags().StringVar(&classifyUserAgent, "user-agent", "", "Visitor user agent")
	classifyCmd.Flags().StringVar(&classifyQuery, "query", "", "Raw URL query string (utm_campaign, poll, q, cart, ...)")
}

// --- assemble command ---

var (
	assembleScope string
	assembleBase  string
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a document, picking the winning variant per slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := readDocument(assembleBase)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		asm := assembler.NewAssembler(strat, st)

		res, err := asm.Assemble(context.Background(), scopeOrDefault(assembleScope), base)
		if err != nil {
			return fmt.Errorf("assembling document: %w", err)
		}

		out := struct {
			Document   content.Document  `json:"document"`
			VariantIDs map[string]string `json:"variant_ids"`
		}{res.Document, res.VariantIDs}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	assembleCmd.Flags().StringVar(&assembleScope, "scope", "", "Experiment scope (default from config)")
	assembleCmd.Flags().StringVar(&assembleBase, "base", "", "Path to base document JSON")
	assembleCmd.MarkFlagRequired("base")
}

// --- deploy command ---

var (
	deployScope   string
	deploySlot    string
	deployContent string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Register a new section variant as a bandit arm",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(deployContent)
		if err != nil {
			return fmt.Errorf("reading content: %w", err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		sec := content.Section{Slot: deploySlot, Content: json.RawMessage(data)}
		id, err := strat.DeployVariant(context.Background(), scopeOrDefault(deployScope), deploySlot, sec)
		if err != nil {
			return fmt.Errorf("deploying variant: %w", err)
		}

		fmt.Printf("Deployed variant %s for slot %s\n", id, deploySlot)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployScope, "scope", "", "Experiment scope (default from config)")
	deployCmd.Flags().StringVar(&deploySlot, "slot", "", "Slot the variant targets")
	deployCmd.Flags().StringVar(&deployContent, "content", "", "Path to section content JSON")
	deployCmd.MarkFlagRequired("slot")
	deployCmd.MarkFlagRequired("content")
}

// --- author command ---

var (
	authorScope   string
	authorSegment string
	authorBrief   string
	authorBase    string
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Draft a segment-targeted document via the copywriter service and enroll it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !persona.ValidSegment(persona.Segment(authorSegment)) {
			return fmt.Errorf("unknown segment %q", authorSegment)
		}

		base, err := readDocument(authorBase)
		if err != nil {
			return err
		}

		cw, err := copywriter.NewClient(cfg.Copywriter.Addr)
		if err != nil {
			return fmt.Errorf("connecting to copywriter: %w", err)
		}
		defer cw.Close()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.CopywriterTimeout())
		defer cancel()

		scope := scopeOrDefault(authorScope)
		draft, err := cw.DraftDocument(ctx, scope, authorSegment, authorBrief, base)
		if err != nil {
			return fmt.Errorf("drafting document: %w", err)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		docID, err := st.SaveDocumentVariant(ctx, scope, draft.Document)
		if err != nil {
			return fmt.Errorf("saving document variant: %w", err)
		}

		strat := strategist.NewStrategist(st, nil)
		fmt.Printf("Saved document %s (model %s)\n", docID, draft.Model)
		for _, sec := range draft.Document.Sections {
			id, err := strat.DeployVariant(ctx, scope, sec.Slot, sec)
			if err != nil {
				return fmt.Errorf("enrolling slot %s: %w", sec.Slot, err)
			}
			fmt.Printf("  %s: %s\n", sec.Slot, id)
		}
		return nil
	},
}

func init() {
	authorCmd.Flags().StringVar(&authorScope, "scope", "", "Experiment scope (default from config)")
	authorCmd.Flags().StringVar(&authorSegment, "segment", "", "Target audience segment")
	authorCmd.Flags().StringVar(&authorBrief, "brief", "", "Creative brief for the copywriter")
	authorCmd.Flags().StringVar(&authorBase, "base", "", "Path to base document JSON")
	authorCmd.MarkFlagRequired("segment")
	authorCmd.MarkFlagRequired("base")
}

// --- convert command ---

var (
	convertScope   string
	convertSlot    string
	convertVariant string
	convertReward  int
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Record a conversion outcome for a served variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		rec, err := strat.RecordConversion(context.Background(), scopeOrDefault(convertScope), convertSlot, convertVariant, convertReward)
		if err != nil {
			return fmt.Errorf("recording conversion: %w", err)
		}

		fmt.Printf("Arm %s/%s now Beta(%d, %d)\n", convertSlot, shortID(convertVariant), rec.Alpha, rec.Beta)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertScope, "scope", "", "Experiment scope (default from config)")
	convertCmd.Flags().StringVar(&convertSlot, "slot", "", "Slot the variant was served in")
	convertCmd.Flags().StringVar(&convertVariant, "variant", "", "Variant ID reported by assemble")
	convertCmd.Flags().IntVar(&convertReward, "reward", 1, "1 for success, 0 for failure")
	convertCmd.MarkFlagRequired("slot")
	convertCmd.MarkFlagRequired("variant")
}

// --- performance command ---

var (
	performanceScope string
	performanceSlot  string
)

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Show per-variant conversion estimates for a slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		report, err := strat.SectionPerformance(context.Background(), scopeOrDefault(performanceScope), performanceSlot)
		if err != nil {
			return fmt.Errorf("building report: %w", err)
		}

		if len(report.Arms) == 0 {
			fmt.Printf("No arms tracked for slot %s\n", performanceSlot)
			return nil
		}

		fmt.Printf("Slot %s (%d arms):\n", report.Slot, len(report.Arms))
		for _, arm := range report.Arms {
			marker := " "
			if arm.Variant == report.BestVariant {
				marker = "*"
			}
			fmt.Printf("%s %s  rate=%.3f  95%% CI [%.3f, %.3f]  trials=%d  Beta(%d, %d)\n",
				marker, shortID(arm.Variant), arm.ConversionRate, arm.IntervalLow, arm.IntervalHigh, arm.Trials, arm.Alpha, arm.Beta)
		}
		return nil
	},
}

func init() {
	performanceCmd.Flags().StringVar(&performanceScope, "scope", "", "Experiment scope (default from config)")
	performanceCmd.Flags().StringVar(&performanceSlot, "slot", "", "Slot to report on")
	performanceCmd.MarkFlagRequired("slot")
}

// --- sweep command ---

var (
	sweepScope         string
	sweepWindowMinutes int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Penalize arms that were served but saw no conversion in the window",
	RunE: func(cmd *cobra.Command, args []string) error {
		window := cfg.TimeoutWindow()
		if sweepWindowMinutes > 0 {
			window = time.Duration(sweepWindowMinutes) * time.Minute
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		n, err := strat.ProcessTimeouts(context.Background(), scopeOrDefault(sweepScope), window)
		if err != nil {
			return fmt.Errorf("sweeping timeouts: %w", err)
		}

		fmt.Printf("Penalized %d arm(s) over a %s window\n", n, window)
		return nil
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepScope, "scope", "", "Experiment scope (default from config)")
	sweepCmd.Flags().IntVar(&sweepWindowMinutes, "window-minutes", 0, "Override the silence window")
}

// --- reset command ---

var (
	resetScope string
	resetSlot  string
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every arm of a slot back to its uniform prior",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		strat := strategist.NewStrategist(st, nil)
		if err := strat.ResetSectionBandit(context.Background(), scopeOrDefault(resetScope), resetSlot); err != nil {
			return fmt.Errorf("resetting slot: %w", err)
		}

		fmt.Printf("Reset slot %s to Beta(1, 1)\n", resetSlot)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringVar(&resetScope, "scope", "", "Experiment scope (default from config)")
	resetCmd.Flags().StringVar(&resetSlot, "slot", "", "Slot to reset")
	resetCmd.MarkFlagRequired("slot")
}

// --- rebuild command ---

var rebuildScope string

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Replay the event log and audit stored arm counters for drift",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		report, err := replay.Rebuild(context.Background(), st, scopeOrDefault(rebuildScope))
		if err != nil {
			return fmt.Errorf("rebuilding from log: %w", err)
		}

		fmt.Printf("Audited %d arm(s)\n", report.Arms)
		if len(report.Drifts) == 0 {
			fmt.Println("No drift: stored counters match the event log.")
			return nil
		}
		for _, d := range report.Drifts {
			fmt.Printf("  DRIFT %s/%s stored Beta(%d, %d) rebuilt Beta(%d, %d)\n",
				d.Slot, shortID(d.Variant), d.StoredAlpha, d.StoredBeta, d.RebuiltAlpha, d.RebuiltBeta)
		}
		return nil
	},
}

func init() {
	rebuildCmd.Flags().StringVar(&rebuildScope, "scope", "", "Experiment scope (default from config)")
}

// --- helpers ---

func openStore() (*store.Store, error) {
	path := cfg.GetDBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	st, err := store.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

func scopeOrDefault(scope string) string {
	if scope != "" {
		return scope
	}
	return cfg.Experiments.Scope
}

func readDocument(path string) (content.Document, error) {
	if path == "" {
		return content.Document{}, fmt.Errorf("no document path given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return content.Document{}, fmt.Errorf("reading document: %w", err)
	}
	var doc content.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return content.Document{}, fmt.Errorf("parsing document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return content.Document{}, err
	}
	return doc, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
