package main

import (
	"strings"

	"github.com/spf13/cobra"

	"reno/pkg/api"
	"reno/pkg/export"
)

// commands annotated public run without a token
const publicAnnotation = "public"

func isPublic(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch {
		case c.Annotations[publicAnnotation] == "true":
			return true
		case c.Name() == "help", c.Name() == "completion", c.Name() == cobra.ShellCompRequestCmd:
			return true
		}
	}
	return false
}

func SetupCommands(a *App) *cobra.Command {
	var configPath, projectFlag string

	// root command
	rootCmd := &cobra.Command{
		Use:           "reno",
		Short:         "A renovation project manager for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Open(configPath); err != nil {
				return err
			}
			if isPublic(cmd) {
				return nil
			}
			return a.session.RequireAuth()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.Close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/reno/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "project id (default: the selected project)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "output", "o", "table", "output format: table, yaml or json")
	_ = rootCmd.RegisterFlagCompletionFunc("project", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeProjects(a, cmd, configPath)
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		authCommands(a),
		dashboardCommand(a),
		projectCommands(a, &projectFlag, &configPath),
		taskCommands(a, &projectFlag),
		memberCommands(a, &projectFlag),
		expenseCommands(a, &projectFlag),
		materialCommands(a, &projectFlag),
		shoppingCommands(a, &projectFlag),
		contractorCommands(a, &projectFlag),
		permitCommands(a, &projectFlag),
		inventoryCommands(a),
		photoCommands(a, &projectFlag),
		reminderCommands(a),
		inspirationCommand(a),
		exportCommand(a, &projectFlag),
	)

	return rootCmd
}

func completeProjects(a *App, cmd *cobra.Command, configPath string) ([]string, cobra.ShellCompDirective) {
	if err := a.Open(configPath); err != nil || !a.session.Authenticated() {
		return nil, cobra.ShellCompDirectiveError
	}
	projects, err := a.client.ListProjects(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID.String()+"\t"+p.Name)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func fixedArgs(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func optionalArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func authCommands(a *App) *cobra.Command {
	var email, password string

	authCmd := &cobra.Command{
		Use:         "auth",
		Short:       "Log in, sign up and check the session",
		Annotations: map[string]string{publicAnnotation: "true"},
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Login(cmd.Context(), email, password)
		},
	}

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Signup(cmd.Context(), email, password)
		},
	}

	for _, c := range []*cobra.Command{loginCmd, signupCmd} {
		c.Flags().StringVarP(&email, "email", "e", "", "account email")
		c.Flags().StringVar(&password, "password", "", "account password")
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Logout()
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Status()
		},
	}

	authCmd.AddCommand(loginCmd, signupCmd, logoutCmd, statusCmd)
	return authCmd
}

func dashboardCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the portfolio summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Dashboard(cmd.Context())
		},
	}
}

func projectCommands(a *App, project, configPath *string) *cobra.Command {
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "List, create and select projects",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListProjects(cmd.Context())
		},
	}

	var name, budget string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project and select it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.CreateProject(cmd.Context(), name, budget)
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "project name")
	createCmd.Flags().StringVarP(&budget, "budget", "b", "", "total budget")

	// command for selecting the project other commands work on
	selectCmd := &cobra.Command{
		Use:   "select [id]",
		Short: "Select the working project",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeProjects(a, cmd, *configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.SelectProject(cmd.Context(), optionalArg(args, 0))
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show project details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ShowProject(cmd.Context(), *project)
		},
	}

	var watch bool
	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Show progress and budget analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Overview(cmd.Context(), *project, watch)
		},
	}
	overviewCmd.Flags().BoolVarP(&watch, "watch", "w", false, "refresh every poll interval")

	var dir string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Download the project report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Report(cmd.Context(), *project, dir)
		},
	}
	reportCmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save the report in")

	projectCmd.AddCommand(listCmd, createCmd, selectCmd, showCmd, overviewCmd, reportCmd)
	return projectCmd
}

func taskCommands(a *App, project *string) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	var recurring bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListTasks(cmd.Context(), *project, recurring)
		},
	}
	listCmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "show recurring maintenance tasks")

	var opts TaskOptions
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Title == "" {
				opts.Title = optionalArg(args, 0)
			}
			return a.AddTask(cmd.Context(), *project, opts)
		},
	}
	addCmd.Flags().StringVarP(&opts.Title, "title", "t", "", "task title")
	addCmd.Flags().StringVar(&opts.Description, "description", "", "description")
	addCmd.Flags().StringVar(&opts.Priority, "priority", "medium", "low, medium or high")
	addCmd.Flags().StringVar(&opts.Deadline, "deadline", "", "deadline (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&opts.ReminderAt, "reminder", "", "reminder time (YYYY-MM-DDTHH:MM)")
	addCmd.Flags().StringVar(&opts.AssignTo, "assign", "", "user id of an active member")
	addCmd.Flags().BoolVar(&opts.Recurring, "recurring", false, "recurring maintenance task")
	addCmd.Flags().StringVar(&opts.Cycle, "cycle", "", "recurring cycle: monthly or yearly")
	_ = addCmd.RegisterFlagCompletionFunc("priority", fixedArgs(api.TaskPriorities))
	_ = addCmd.RegisterFlagCompletionFunc("cycle", fixedArgs(api.RecurringCycles))

	statusCmd := &cobra.Command{
		Use:   "status <task-id> [status]",
		Short: "Change a task's status",
		Args:  cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return api.TaskStatuses, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.SetTaskStatus(cmd.Context(), args[0], optionalArg(args, 1))
		},
	}

	assignCmd := &cobra.Command{
		Use:   "assign <task-id> [user-id]",
		Short: "Assign a task to a member; no user unassigns",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AssignTask(cmd.Context(), *project, args[0], optionalArg(args, 1))
		},
	}

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming task reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.UpcomingReminders(cmd.Context())
		},
	}

	sentCmd := &cobra.Command{
		Use:   "sent <task-id>",
		Short: "Mark a task reminder as sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.MarkReminderSent(cmd.Context(), args[0])
		},
	}

	taskCmd.AddCommand(listCmd, addCmd, statusCmd, assignCmd, upcomingCmd, sentCmd)
	return taskCmd
}

func memberCommands(a *App, project *string) *cobra.Command {
	memberCmd := &cobra.Command{
		Use:   "member",
		Short: "Manage project members",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListMembers(cmd.Context(), *project)
		},
	}

	var role string
	inviteCmd := &cobra.Command{
		Use:   "invite <email>",
		Short: "Invite a collaborator by email",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.InviteMember(cmd.Context(), *project, optionalArg(args, 0), role)
		},
	}
	inviteCmd.Flags().StringVar(&role, "role", "member", "member role")

	memberCmd.AddCommand(listCmd, inviteCmd)
	return memberCmd
}

func expenseCommands(a *App, project *string) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Track project expenses",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListExpenses(cmd.Context(), *project)
		},
	}

	var title, category, amount string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddExpense(cmd.Context(), *project, title, category, amount)
		},
	}
	addCmd.Flags().StringVarP(&title, "title", "t", "", "expense title")
	addCmd.Flags().StringVarP(&category, "category", "c", "", "category")
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "amount")

	rmCmd := &cobra.Command{
		Use:   "rm <expense-id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.DeleteExpense(cmd.Context(), *project, args[0])
		},
	}

	expenseCmd.AddCommand(listCmd, addCmd, rmCmd)
	return expenseCmd
}

func materialCommands(a *App, project *string) *cobra.Command {
	materialCmd := &cobra.Command{
		Use:   "material",
		Short: "Plan project materials",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List materials with the budget summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListMaterials(cmd.Context(), *project)
		},
	}

	var name, cost string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddMaterial(cmd.Context(), *project, name, cost)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "material name")
	addCmd.Flags().StringVarP(&cost, "cost", "c", "", "estimated cost")

	toggleCmd := &cobra.Command{
		Use:   "toggle <material-id>",
		Short: "Flip a material's purchased flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ToggleMaterial(cmd.Context(), *project, args[0])
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a material list for the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.GenerateMaterials(cmd.Context(), *project)
		},
	}

	materialCmd.AddCommand(listCmd, addCmd, toggleCmd, generateCmd)
	return materialCmd
}

func shoppingCommands(a *App, project *string) *cobra.Command {
	shoppingCmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage the shopping list",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shopping items with the budget summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListShopping(cmd.Context(), *project)
		},
	}

	var name, cost string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a shopping item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddShoppingItem(cmd.Context(), *project, name, cost)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "item name")
	addCmd.Flags().StringVarP(&cost, "cost", "c", "", "estimated cost")

	toggleCmd := &cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Flip an item's purchased flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ToggleShoppingItem(cmd.Context(), *project, args[0])
		},
	}

	shoppingCmd.AddCommand(listCmd, addCmd, toggleCmd)
	return shoppingCmd
}

func contractorCommands(a *App, project *string) *cobra.Command {
	contractorCmd := &cobra.Command{
		Use:   "contractor",
		Short: "Manage contractors and visits",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List contractors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListContractors(cmd.Context(), *project)
		},
	}

	var name, phone, email, role string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contractor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddContractor(cmd.Context(), *project, name, phone, email, role)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "contractor name")
	addCmd.Flags().StringVar(&phone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&email, "email", "", "email")
	addCmd.Flags().StringVar(&role, "role", "", "trade or role")

	var date, note string
	scheduleCmd := &cobra.Command{
		Use:   "schedule <contractor-id>",
		Short: "Schedule a contractor visit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ScheduleVisit(cmd.Context(), *project, optionalArg(args, 0), date, note)
		},
	}
	scheduleCmd.Flags().StringVarP(&date, "date", "d", "", "visit date and time (YYYY-MM-DDTHH:MM)")
	scheduleCmd.Flags().StringVar(&note, "note", "", "note for the visit")

	var limit int
	activityCmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent contractor activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ContractorActivity(cmd.Context(), *project, limit)
		},
	}
	activityCmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of entries")

	contractorCmd.AddCommand(listCmd, addCmd, scheduleCmd, activityCmd)
	return contractorCmd
}

func permitCommands(a *App, project *string) *cobra.Command {
	permitCmd := &cobra.Command{
		Use:   "permit",
		Short: "Track permits",
	}

	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List permits",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListPermits(cmd.Context(), *project, status)
		},
	}
	listCmd.Flags().StringVarP(&status, "status", "s", "all", "filter: all, pending, approved or rejected")
	_ = listCmd.RegisterFlagCompletionFunc("status", fixedArgs(append([]string{"all"}, api.PermitStatuses...)))

	var name, addStatus, approval string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a permit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddPermit(cmd.Context(), *project, name, addStatus, approval)
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "permit name")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "pending", "pending, approved or rejected")
	addCmd.Flags().StringVar(&approval, "approved-on", "", "approval date (YYYY-MM-DD)")
	_ = addCmd.RegisterFlagCompletionFunc("status", fixedArgs(api.PermitStatuses))

	statusCmd := &cobra.Command{
		Use:   "status <permit-id> [status]",
		Short: "Change a permit's status",
		Args:  cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return api.PermitStatuses, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.SetPermitStatus(cmd.Context(), args[0], optionalArg(args, 1))
		},
	}

	permitCmd.AddCommand(listCmd, addCmd, statusCmd)
	return permitCmd
}

func inventoryCommands(a *App) *cobra.Command {
	inventoryCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the home inventory",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListInventory(cmd.Context())
		},
	}

	var opts InventoryOptions
	bind := func(c *cobra.Command) {
		c.Flags().StringVarP(&opts.Name, "name", "n", "", "item name")
		c.Flags().StringVarP(&opts.Quantity, "quantity", "q", "", "quantity")
		c.Flags().StringVarP(&opts.Unit, "unit", "u", "", "unit")
		c.Flags().StringVarP(&opts.Location, "location", "l", "", "where it is kept")
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddInventoryItem(cmd.Context(), opts)
		},
	}
	bind(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.EditInventoryItem(cmd.Context(), args[0], opts)
		},
	}
	bind(editCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.DeleteInventoryItem(cmd.Context(), args[0])
		},
	}

	inventoryCmd.AddCommand(listCmd, addCmd, editCmd, rmCmd)
	return inventoryCmd
}

func photoCommands(a *App, project *string) *cobra.Command {
	photoCmd := &cobra.Command{
		Use:   "photo",
		Short: "Manage project photos",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List photos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListPhotos(cmd.Context(), *project)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <file|url>",
		Short: "Upload a photo from a file or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddPhoto(cmd.Context(), *project, args[0])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <photo-id>",
		Short: "Delete a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.DeletePhoto(cmd.Context(), *project, args[0])
		},
	}

	photoCmd.AddCommand(listCmd, addCmd, rmCmd)
	return photoCmd
}

func reminderCommands(a *App) *cobra.Command {
	reminderCmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage reminders",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List open reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ListReminders(cmd.Context())
		},
	}

	var title, description, date string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.AddReminder(cmd.Context(), title, description, date)
		},
	}
	addCmd.Flags().StringVarP(&title, "title", "t", "", "reminder title")
	addCmd.Flags().StringVar(&description, "description", "", "description")
	addCmd.Flags().StringVarP(&date, "date", "d", "", "reminder date and time (YYYY-MM-DDTHH:MM)")

	doneCmd := &cobra.Command{
		Use:   "done <reminder-id>",
		Short: "Mark a reminder as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.CompleteReminder(cmd.Context(), args[0])
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the number of upcoming task reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.WatchReminders(cmd.Context())
		},
	}

	reminderCmd.AddCommand(listCmd, addCmd, doneCmd, watchCmd)
	return reminderCmd
}

func inspirationCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspiration <prompt>",
		Short: "Generate design ideas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Inspiration(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func exportCommand(a *App, project *string) *cobra.Command {
	var path, format string
	exportCmd := &cobra.Command{
		Use:       "export <resource>",
		Short:     "Export a collection to xlsx, yaml or json",
		Args:      cobra.ExactArgs(1),
		ValidArgs: ExportResources(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Export(cmd.Context(), *project, args[0], path, format)
		},
	}
	exportCmd.Flags().StringVarP(&path, "file", "f", "", "output file (default <resource>.<format>)")
	exportCmd.Flags().StringVar(&format, "format", "", "xlsx, yaml or json (default from the file extension)")
	_ = exportCmd.RegisterFlagCompletionFunc("format", fixedArgs(export.Formats))
	return exportCmd
}
