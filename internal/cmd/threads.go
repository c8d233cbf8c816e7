package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/convobar/internal/domain"
	"github.com/renato0307/convobar/internal/logging"
	"github.com/renato0307/convobar/internal/services"
)

// ThreadsCmd manages threads
type ThreadsCmd struct {
	Add  ThreadsAddCmd  `cmd:"add" help:"Add a new thread"`
	Del  ThreadsDelCmd  `cmd:"del" help:"Delete a thread"`
	List ThreadsListCmd `cmd:"list" help:"List all threads" default:"1"`
	Set  ThreadsSetCmd  `cmd:"set" help:"Set thread flags"`
	View ThreadsViewCmd `cmd:"view" help:"View a specific thread"`
}

// ThreadsListCmd lists threads
type ThreadsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Kinds  bool   `help:"Resolve the bottom view of every thread"`
}

// Run executes the list command
func (s *ThreadsListCmd) Run(cli *CLI) error {
	container := cli.Container
	ctx := context.Background()
	threads, err := container.ThreadService.ListThreads(ctx)
	if err != nil {
		return fmt.Errorf("failed to list threads: %w", err)
	}

	kinds := make(map[string]string, len(threads))
	if s.Kinds {
		resolved, err := container.ConversationService.ResolveKinds(ctx, threads)
		if err != nil {
			return fmt.Errorf("failed to resolve bottom views: %w", err)
		}
		for _, tk := range resolved {
			kinds[tk.ThreadID] = tk.Kind
		}
	}

	if s.Format == "json" {
		return s.printJSON(threads, kinds)
	}
	return s.printTable(threads, kinds)
}

type threadListEntry struct {
	BottomView string        `json:"bottom_view,omitempty"`
	Thread     domain.Thread `json:"thread"`
}

func (s *ThreadsListCmd) printJSON(threads []domain.Thread, kinds map[string]string) error {
	entries := make([]threadListEntry, len(threads))
	for i, t := range threads {
		entries[i] = threadListEntry{BottomView: kinds[t.ID], Thread: t}
	}
	return writeJSON(entries)
}

func (s *ThreadsListCmd) printTable(threads []domain.Thread, kinds map[string]string) error {
	if len(threads) == 0 {
		fmt.Println("No threads. Use 'convobar threads add' to create one.")
		return nil
	}

	w := newTable()
	header := "ID\tName\tGroup\tFlags"
	if s.Kinds {
		header += "\tBottom View"
	}
	fmt.Fprintln(w, header)

	for _, t := range threads {
		line := fmt.Sprintf("%s\t%s\t%t\t%s", t.ID, t.Name, t.IsGroup, flagSummary(t))
		if s.Kinds {
			line += "\t" + kinds[t.ID]
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// flagSummary renders the set flags of a thread compactly
func flagSummary(t domain.Thread) string {
	var flags []string
	if t.HasPendingMessageRequest {
		flags = append(flags, "request")
	}
	if t.IsLocalUserPendingMember {
		flags = append(flags, "pending")
	}
	if t.IsBlockedByMigration {
		flags = append(flags, "migration")
	}
	if t.IsBlocked {
		flags = append(flags, "blocked")
	}
	if t.HasLeftGroup {
		flags = append(flags, "left")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

// ThreadsAddCmd adds a new thread
type ThreadsAddCmd struct {
	Blocked   bool   `help:"The other party is blocked"`
	Group     bool   `help:"Create a group thread"`
	ID        string `help:"Thread ID (generated when empty)" default:""`
	Migration bool   `help:"Thread is blocked by a pending migration"`
	Name      string `arg:"" optional:"" help:"Display name of the thread (asked for when omitted)"`
	Pending   bool   `help:"Local user is a pending member"`
	Request   bool   `help:"Thread has a pending message request"`
}

// Run executes the add command
func (s *ThreadsAddCmd) Run(cli *CLI) error {
	container := cli.Container
	if s.Name == "" {
		if err := s.askParams(); err != nil {
			return err
		}
	}

	thread, err := container.ThreadService.CreateThread(context.Background(), services.CreateThreadParams{
		HasPendingMessageRequest: s.Request,
		ID:                       s.ID,
		IsBlocked:                s.Blocked,
		IsBlockedByMigration:     s.Migration,
		IsGroup:                  s.Group,
		IsLocalUserPendingMember: s.Pending,
		Name:                     s.Name,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Thread '%s' added with ID %s\n", thread.Name, thread.ID)
	return nil
}

// askParams fills the command from an interactive form
func (s *ThreadsAddCmd) askParams() error {
	var flags []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Thread name").
				Value(&s.Name).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Group thread?").
				Value(&s.Group),
			huh.NewMultiSelect[string]().
				Title("Initial state").
				Options(
					huh.NewOption("Pending message request", "request"),
					huh.NewOption("Local user is a pending member", "pending"),
					huh.NewOption("Blocked by migration", "migration"),
					huh.NewOption("Other party blocked", "blocked"),
				).
				Value(&flags),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("form cancelled: %w", err)
	}

	for _, f := range flags {
		switch f {
		case "request":
			s.Request = true
		case "pending":
			s.Pending = true
		case "migration":
			s.Migration = true
		case "blocked":
			s.Blocked = true
		}
	}
	return nil
}

// ThreadsDelCmd deletes a thread
type ThreadsDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"ID of the thread to delete"`
}

// Run executes the del command
func (s *ThreadsDelCmd) Run(cli *CLI) error {
	container := cli.Container
	logging.Logger.Info("Executing threads del command", "thread", s.ID, "force", s.Force)

	ctx := context.Background()
	thread, err := container.ThreadService.GetThread(ctx, s.ID)
	if err != nil {
		logging.Logger.Error("Thread not found", "thread", s.ID, "error", err)
		return err
	}

	if !s.Force && !s.confirmDeletion(thread) {
		return nil
	}

	if err := container.ThreadService.DeleteThread(ctx, s.ID); err != nil {
		return err
	}

	logging.Logger.Info("Thread deleted via CLI", "thread", s.ID)
	fmt.Printf("Thread '%s' deleted successfully\n", thread.Name)
	return nil
}

func (s *ThreadsDelCmd) confirmDeletion(thread *domain.Thread) bool {
	fmt.Printf("WARNING: This will delete thread '%s' (%s)\n", thread.Name, thread.ID)
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled thread deletion", "thread", s.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}

// ThreadsSetCmd updates thread flags. Flags left empty are not touched.
type ThreadsSetCmd struct {
	Blocked   string `help:"The other party is blocked (true/false)" default:""`
	ID        string `arg:"" help:"ID of the thread to update"`
	Left      string `help:"Local user has left the group (true/false)" default:""`
	Migration string `help:"Thread is blocked by a pending migration (true/false)" default:""`
	Pending   string `help:"Local user is a pending member (true/false)" default:""`
	Request   string `help:"Thread has a pending message request (true/false)" default:""`
}

// Run executes the set command
func (s *ThreadsSetCmd) Run(cli *CLI) error {
	var flags domain.ThreadFlags
	for _, f := range []struct {
		name   string
		value  string
		target **bool
	}{
		{"blocked", s.Blocked, &flags.IsBlocked},
		{"left", s.Left, &flags.HasLeftGroup},
		{"migration", s.Migration, &flags.IsBlockedByMigration},
		{"pending", s.Pending, &flags.IsLocalUserPendingMember},
		{"request", s.Request, &flags.HasPendingMessageRequest},
	} {
		if f.value == "" {
			continue
		}
		v, err := strconv.ParseBool(f.value)
		if err != nil {
			return fmt.Errorf("invalid --%s value %q: want true or false", f.name, f.value)
		}
		*f.target = &v
	}
	if flags == (domain.ThreadFlags{}) {
		return fmt.Errorf("nothing to set, pass at least one flag")
	}

	if err := cli.Container.ThreadService.SetFlags(context.Background(), s.ID, flags); err != nil {
		return err
	}

	fmt.Printf("Thread '%s' updated\n", s.ID)
	return nil
}

// ThreadsViewCmd views a specific thread
type ThreadsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID of the thread to view"`
}

// Run executes the view command
func (s *ThreadsViewCmd) Run(cli *CLI) error {
	container := cli.Container
	thread, err := container.ThreadService.GetThread(context.Background(), s.ID)
	if err != nil {
		return fmt.Errorf("failed to get thread: %w", err)
	}

	if s.Format == "json" {
		return writeJSON(thread)
	}

	fmt.Printf("Thread: %s\n", thread.Name)
	fmt.Printf("ID: %s\n", thread.ID)
	fmt.Printf("Group: %t\n", thread.IsGroup)
	fmt.Printf("Blocked: %t\n", thread.IsBlocked)
	fmt.Printf("Pending Message Request: %t\n", thread.HasPendingMessageRequest)
	if thread.HasPendingMessageRequest {
		fmt.Printf("Request Subtype: %s\n", thread.ResolveRequestSubtype())
	}
	fmt.Printf("Local User Pending Member: %t\n", thread.IsLocalUserPendingMember)
	fmt.Printf("Blocked By Migration: %t\n", thread.IsBlockedByMigration)
	fmt.Printf("Left Group: %t\n", thread.HasLeftGroup)
	fmt.Printf("Last Updated: %s\n", thread.LastUpdated.Format("2006-01-02 15:04:05"))
	return nil
}
