// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/work-diary/internal/mirror"
	"github.com/MKhiriev/work-diary/internal/service"
	"github.com/MKhiriev/work-diary/models"
)

type runner struct {
	factory Factory
	opts    Options
	client  Client
}

// viewFlags select the page of entries that a command loads into the mirror.
type viewFlags struct {
	mine  bool
	date  string
	page  int
	limit int
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.mine, "mine", false, "only my entries instead of the team feed")
	cmd.Flags().StringVar(&f.date, "date", "", "only entries of this day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", models.DefaultPageLimit, "entries per page")
}

func (f *viewFlags) view(user models.User) mirror.View {
	v := mirror.View{Date: f.date, Page: f.page, Limit: f.limit}
	if f.mine {
		v.UserID = user.UserID
	}
	return v
}

// Execute runs the work-diary CLI with args. factory is called once, before
// any command other than version runs, and the client it returns is closed
// whatever the outcome of the command.
func Execute(ctx context.Context, factory Factory, build models.AppBuildInfo, args []string, stdout, stderr io.Writer) error {
	r := &runner{factory: factory}

	root := newRootCommand(r, build)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, r.close(ctx))
}

func newRootCommand(r *runner, build models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "work-diary",
		Short:         "Team work diary client",
		Long:          "Write today's entry, read the team feed, comment, react and keep todos.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.open(cmd.Context())
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&r.opts.ConfigPath, "config", "", "path to a JSON config file")
	root.PersistentFlags().StringVarP(&r.opts.ServerAddress, "server", "a", "", "server base URL")
	root.PersistentFlags().StringVar(&r.opts.DSN, "db", "", "local SQLite database")

	root.AddCommand(
		r.newRegisterCommand(),
		r.newLoginCommand(),
		r.newLogoutCommand(),
		r.newFeedCommand(),
		r.newWriteCommand(),
		r.newCommentCommand(),
		r.newReactCommand(),
		r.newTodoCommand(),
		newVersionCommand(build),
	)

	return root
}

func (r *runner) open(ctx context.Context) error {
	c, err := r.factory(ctx, r.opts)
	if err != nil {
		return err
	}
	r.client = c
	return c.Start(ctx)
}

func (r *runner) close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	c := r.client
	r.client = nil
	return c.Close(context.WithoutCancel(ctx))
}

func (r *runner) services() *service.ClientServices {
	return r.client.Services()
}

func (r *runner) currentUser() (models.User, error) {
	user, ok := r.services().AuthService.CurrentUser()
	if !ok {
		return models.User{}, fmt.Errorf("%w: run `work-diary login` first", service.ErrNotLoggedIn)
	}
	return user, nil
}

func (r *runner) newRegisterCommand() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				req.Password = password
			}

			user, err := r.services().AuthService.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 6 characters); prompted for when omitted")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (r *runner) newLoginCommand() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				password, err := promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				req.Password = password
			}

			user, err := r.services().AuthService.Login(cmd.Context(), req)
			if errors.Is(err, service.ErrWrongPassword) {
				return errors.New("invalid credentials")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password; prompted for when omitted")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (r *runner) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.services().AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (r *runner) newFeedCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show a page of entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := r.load(cmd.Context(), &flags); err != nil {
				return err
			}
			r.print(cmd)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *runner) newWriteCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Write today's entry",
		Long: "Write today's entry. With --interactive every line read from stdin is " +
			"appended to the body and saved once typing pauses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := r.currentUser()
			if err != nil {
				return err
			}
			writer := r.services().Writer

			if !interactive {
				if err = writer.Type(strings.Join(args, " ")); err != nil {
					return err
				}
			} else {
				var body []string
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					body = append(body, scanner.Text())
					if err = writer.Type(strings.Join(body, "\n")); err != nil {
						return err
					}
				}
				if err = scanner.Err(); err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
			}

			if err = writer.Flush(cmd.Context()); err != nil {
				renderStatus(cmd.ErrOrStderr(), r.services().StatusBoard)
				return err
			}

			out := cmd.OutOrStdout()
			if entry, ok := r.services().Mirror.FindByDay(user.UserID, todayIn(r.client)); ok {
				renderEntry(out, entry, r.client.Location())
			}
			renderStatus(out, r.services().StatusBoard)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read the body from stdin line by line")

	return cmd
}

func (r *runner) newCommentCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "comment <entry-id> <text...>",
		Short: "Comment on an entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.mutate(cmd, &flags, func(s service.Synchronizer) *service.Op {
				return s.AddComment(args[0], strings.Join(args[1:], " "))
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *runner) newReactCommand() *cobra.Command {
	var flags viewFlags

	names := make([]string, 0, len(models.ReactionTypes))
	for _, t := range models.ReactionTypes {
		names = append(names, string(t))
	}

	cmd := &cobra.Command{
		Use:       "react <entry-id> <" + strings.Join(names, "|") + ">",
		Short:     "Toggle your reaction on an entry",
		Args:      cobra.ExactArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			reaction := models.ReactionType(args[1])
			if !reaction.Valid() {
				return fmt.Errorf("unknown reaction %q, want one of %s", args[1], strings.Join(names, ", "))
			}
			return r.mutate(cmd, &flags, func(s service.Synchronizer) *service.Op {
				return s.ToggleReaction(args[0], reaction)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func (r *runner) newTodoCommand() *cobra.Command {
	todo := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list of an entry",
	}

	var addFlags, doneFlags, rmFlags viewFlags

	add := &cobra.Command{
		Use:   "add <entry-id> <text...>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.mutate(cmd, &addFlags, func(s service.Synchronizer) *service.Op {
				return s.AddTodo(args[0], strings.Join(args[1:], " "))
			})
		},
	}
	addFlags.register(add)

	done := &cobra.Command{
		Use:   "done <entry-id> <todo-id|position>",
		Short: "Toggle a todo between done and open",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.mutate(cmd, &doneFlags, func(s service.Synchronizer) *service.Op {
				return s.ToggleTodo(args[0], args[1])
			})
		},
	}
	doneFlags.register(done)

	rm := &cobra.Command{
		Use:     "rm <entry-id> <todo-id|position>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.mutate(cmd, &rmFlags, func(s service.Synchronizer) *service.Op {
				return s.DeleteTodo(args[0], args[1])
			})
		},
	}
	rmFlags.register(rm)

	todo.AddCommand(add, done, rm)
	return todo
}

func newVersionCommand(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no client is needed to print the build
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), build.String())
		},
	}
}

// load fetches the page selected by flags into the mirror.
func (r *runner) load(ctx context.Context, flags *viewFlags) (models.User, error) {
	user, err := r.currentUser()
	if err != nil {
		return models.User{}, err
	}
	if err = r.services().Synchronizer.Refresh(ctx, flags.view(user)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// mutate loads the view holding the entry, runs the mutation and prints the
// entry once the server has answered.
func (r *runner) mutate(cmd *cobra.Command, flags *viewFlags, run func(service.Synchronizer) *service.Op) error {
	ctx := cmd.Context()
	if _, err := r.load(ctx, flags); err != nil {
		return err
	}

	err := run(r.services().Synchronizer).Wait(ctx)
	if errors.Is(err, service.ErrEntryNotLoaded) {
		return fmt.Errorf("%w: use --mine, --date or --page to select the page that lists it", err)
	}

	r.print(cmd)
	return err
}

func (r *runner) print(cmd *cobra.Command) {
	m := r.services().Mirror
	renderEntries(cmd.OutOrStdout(), m.Snapshot(), m.Pages(), r.client.Location())
	renderStatus(cmd.ErrOrStderr(), r.services().StatusBoard)
}

var timeNow = time.Now

func todayIn(c Client) string {
	return models.DayKey(timeNow(), c.Location())
}
