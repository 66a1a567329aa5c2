package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/yobo-blog/internal/adapter"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/models"
)

// Usage lists the supported commands.
const Usage = `usage: client [-s url] [-t token] <command> [flags]

commands:
  version
  register -email E -password P [-name N]
  login    -email E -password P
  me
  posts    [-mine]
  post     <id|slug>
  create   -title T -content C [-draft]
  update   <id> -title T -content C [-published=true|false] [-regenerate-slug]
  delete   <id>`

type command func(ctx context.Context, args []string) (any, error)

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}
	a.commands = map[string]command{
		"version":  a.version,
		"register": a.register,
		"login":    a.login,
		"me":       a.me,
		"posts":    a.posts,
		"post":     a.post,
		"create":   a.create,
		"update":   a.update,
		"delete":   a.delete,
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	result, err := cmd(ctx, args[1:])
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return nil, err
	}
	return models.VersionResponse{Version: v}, nil
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	var req models.RegisterRequest
	fs := newFlagSet("register")
	fs.StringVar(&req.Email, "email", "", "account e-mail")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FullName, "name", "", "display name")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.Register(ctx, req)
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "account e-mail")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.Login(ctx, req)
}

func (a *App) me(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Me(ctx)
}

func (a *App) posts(ctx context.Context, args []string) (any, error) {
	var mine bool
	fs := newFlagSet("posts")
	fs.BoolVar(&mine, "mine", false, "only my posts")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	return a.adapter.ListPosts(ctx, mine)
}

// post accepts either a numeric ID or a slug.
func (a *App) post(ctx context.Context, args []string) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: post needs exactly one id or slug", ErrUsage)
	}

	if postID, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		return a.adapter.GetPost(ctx, postID)
	}
	return a.adapter.GetPostBySlug(ctx, args[0])
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	var in models.BlogPostInput
	var draft bool
	fs := newFlagSet("create")
	fs.StringVar(&in.Title, "title", "", "post title")
	fs.StringVar(&in.Content, "content", "", "post body (HTML)")
	fs.BoolVar(&draft, "draft", false, "keep the post unpublished")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	published := !draft
	in.IsPublished = &published

	return a.adapter.CreatePost(ctx, in)
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	postID, rest, err := leadingID("update", args)
	if err != nil {
		return nil, err
	}

	var in models.BlogPostInput
	fs := newFlagSet("update")
	fs.StringVar(&in.Title, "title", "", "post title")
	fs.StringVar(&in.Content, "content", "", "post body (HTML)")
	fs.BoolVar(&in.RegenerateSlug, "regenerate-slug", false, "derive a new slug from the title")
	fs.Func("published", "true or false; unchanged when omitted", func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		in.IsPublished = &v
		return nil
	})
	if err = parseFlags(fs, rest); err != nil {
		return nil, err
	}

	return a.adapter.UpdatePost(ctx, postID, in)
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	postID, rest, err := leadingID("delete", args)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: delete takes only an id", ErrUsage)
	}

	if err = a.adapter.DeletePost(ctx, postID); err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "post %d deleted\n", postID)
	return nil, nil
}

func leadingID(name string, args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: %s needs a post id", ErrUsage, name)
	}

	postID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || postID <= 0 {
		return 0, nil, fmt.Errorf("%w: %q is not a post id", ErrUsage, args[0])
	}
	return postID, args[1:], nil
}
