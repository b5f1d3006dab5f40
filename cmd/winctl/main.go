package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/1broseidon/winctl"
	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/proc"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "info":
		os.Exit(runInfo(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "find":
		os.Exit(runFind(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "active":
		os.Exit(runActive(os.Args[2:]))
	case "hide":
		os.Exit(runHide(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  info <window>       Show position and size of a window")
	fmt.Fprintln(w, "  list                List all top-level windows")
	fmt.Fprintln(w, "  find <pid>          Find the main window of a process")
	fmt.Fprintln(w, "  windows <pid>       List all windows of a process")
	fmt.Fprintln(w, "  active              Show the PID owning the focused window")
	fmt.Fprintln(w, "  hide <window>       Hide a window from the taskbar and alt-tab switcher")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window identifiers are decimal or 0x-prefixed hex, as printed by 'list'.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winctl <command> --help' for command-specific options.")
}

// parsePID parses a decimal process ID argument.
func parsePID(s string) (uint32, error) {
	pid, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	return uint32(pid), nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

type windowInfoJSON struct {
	Window string `json:"window"`
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl info [--json] <window>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the screen-space position and size of a top-level window.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "info requires exactly one <window> argument")
		fs.Usage()
		return 2
	}

	h, err := winctl.ParseHandle(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	info, err := winctl.GetWindowInfo(h)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		return printJSON(windowInfoJSON{
			Window: winctl.FormatHandle(h),
			X:      info.X,
			Y:      info.Y,
			Width:  info.Width,
			Height: info.Height,
		})
	}

	fmt.Printf("window: %s\n", winctl.FormatHandle(h))
	fmt.Printf("x:      %d\n", info.X)
	fmt.Printf("y:      %d\n", info.Y)
	fmt.Printf("width:  %d\n", info.Width)
	fmt.Printf("height: %d\n", info.Height)
	return 0
}

type windowEntryJSON struct {
	Window      string `json:"window"`
	PID         uint32 `json:"pid"`
	ProcessName string `json:"process_name,omitempty"`
	Title       string `json:"title,omitempty"`
	Visible     bool   `json:"visible"`
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl list [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List all top-level windows with owning PID, process name, and title.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "list takes no arguments")
		fs.Usage()
		return 2
	}

	windows, err := winctl.ListWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		entries := make([]windowEntryJSON, 0, len(windows))
		for _, w := range windows {
			entries = append(entries, windowEntryJSON{
				Window:      winctl.FormatHandle(w.Handle),
				PID:         w.PID,
				ProcessName: proc.Name(w.PID),
				Title:       w.Title,
				Visible:     w.Visible,
			})
		}
		return printJSON(entries)
	}

	tty := stdoutIsTerminal()
	if tty {
		fmt.Printf("%-12s %7s %-16s %s\n", "WINDOW", "PID", "PROCESS", "TITLE")
	}
	for _, w := range windows {
		fmt.Println(formatWindowLine(w, proc.Name(w.PID), tty))
	}
	return 0
}

// formatWindowLine renders one enumeration row. Aligned columns on a
// terminal, tab-separated fields otherwise.
func formatWindowLine(w winctl.Window, processName string, tty bool) string {
	title := w.Title
	if title == "" {
		title = "-"
	}
	if processName == "" {
		processName = "-"
	}
	if tty {
		return fmt.Sprintf("%-12s %7d %-16s %s", winctl.FormatHandle(w.Handle), w.PID, processName, title)
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s", winctl.FormatHandle(w.Handle), w.PID, processName, title)
}

func runFind(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl find [--json] [--require-visible=BOOL] [--require-title=BOOL] <pid>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Find a plausible main window for a process. Exits 1 when the process")
		fmt.Fprintln(os.Stderr, "owns no windows.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	requireVisible := fs.Bool("require-visible", cfg.MainWindow.RequireVisible, "Only consider mapped windows")
	requireTitle := fs.Bool("require-title", cfg.MainWindow.RequireTitle, "Only consider titled windows")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "find requires exactly one <pid> argument")
		fs.Usage()
		return 2
	}

	pid, err := parsePID(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	policy := winctl.MainWindowPolicy{
		RequireVisible: *requireVisible,
		RequireTitle:   *requireTitle,
	}
	h, ok, err := winctl.FindWindowByPIDWithPolicy(pid, policy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !ok {
		if *jsonOut {
			return printJSON(struct {
				Found bool `json:"found"`
			}{false})
		}
		fmt.Fprintf(os.Stderr, "no window found for pid %d\n", pid)
		return 1
	}

	if *jsonOut {
		return printJSON(struct {
			Found  bool   `json:"found"`
			Window string `json:"window"`
		}{true, winctl.FormatHandle(h)})
	}
	fmt.Println(winctl.FormatHandle(h))
	return 0
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl windows [--json] <pid>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List all top-level windows owned by a process, one per line. An empty")
		fmt.Fprintln(os.Stderr, "result is not an error.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "windows requires exactly one <pid> argument")
		fs.Usage()
		return 2
	}

	pid, err := parsePID(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	handles, err := winctl.FindWindowsByPID(pid)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		out := make([]string, 0, len(handles))
		for _, h := range handles {
			out = append(out, winctl.FormatHandle(h))
		}
		return printJSON(out)
	}
	for _, h := range handles {
		fmt.Println(winctl.FormatHandle(h))
	}
	return 0
}

func runActive(args []string) int {
	fs := flag.NewFlagSet("active", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl active [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the PID owning the currently focused window. Exits 1 when no")
		fmt.Fprintln(os.Stderr, "window has focus.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", false, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "active takes no arguments")
		fs.Usage()
		return 2
	}

	pid, ok, err := winctl.ActiveWindowPID()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !ok {
		if *jsonOut {
			return printJSON(struct {
				Found bool `json:"found"`
			}{false})
		}
		fmt.Fprintln(os.Stderr, "no active window")
		return 1
	}

	name := proc.Name(pid)
	if *jsonOut {
		return printJSON(struct {
			Found       bool   `json:"found"`
			PID         uint32 `json:"pid"`
			ProcessName string `json:"process_name,omitempty"`
		}{true, pid, name})
	}
	if name != "" && stdoutIsTerminal() {
		fmt.Printf("%d (%s)\n", pid, name)
	} else {
		fmt.Println(pid)
	}
	return 0
}

func runHide(args []string) int {
	fs := flag.NewFlagSet("hide", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl hide <window>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Exclude a window from the taskbar and alt-tab switcher. The window")
		fmt.Fprintln(os.Stderr, "stays visible on screen.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "hide requires exactly one <window> argument")
		fs.Usage()
		return 2
	}

	h, err := winctl.ParseHandle(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := winctl.HideFromSwitcher(h); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func printJSON(v any) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
