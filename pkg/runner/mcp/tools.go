package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/runner/items"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerWhoAmITool(srv, svc)
	registerLoginTool(srv, svc)
	registerLogoutTool(srv, svc)
	registerGetDataTool(srv, svc)
	registerSetFieldTool(srv, svc)
	registerSummaryTool(srv, svc)
	registerListItemsTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerCompleteItemTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerEditWritingTool(srv, svc)
	registerUpdateMeTool(srv, svc)
	registerSetLabelTool(srv, svc)
	registerSetThemeTool(srv, svc)
	registerSetColorTool(srv, svc)
	registerMusicTool(srv, svc)
	registerLearnTool(srv, svc)
}

func kindNames() []string {
	out := make([]string, 0, len(items.Kinds))
	for _, k := range items.Kinds {
		out = append(out, string(k))
	}
	return out
}

func themeNames() []string {
	out := make([]string, 0, len(appdata.Themes))
	for _, t := range appdata.Themes {
		out = append(out, string(t))
	}
	return out
}

func registerWhoAmITool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"whoami",
		mcp.WithDescription("Report the signed-in user and which data namespace is active."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		who, err := svc.WhoAmI()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(who)
	})
}

func registerLoginTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"login",
		mcp.WithDescription("Sign in. Data switches to the account's namespace; guest data is left untouched."),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Account email."),
		),
		mcp.WithString("password",
			mcp.Required(),
			mcp.Description("Account password."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		who, err := svc.Login(ctx, args.Email, args.Password)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(who)
	})
}

func registerLogoutTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"logout",
		mcp.WithDescription("Sign out and continue as guest."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		who, err := svc.Logout(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(who)
	})
}

func registerGetDataTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_data",
		mcp.WithDescription("Fetch all of the active user's data, or one top-level field of it."),
		mcp.WithString("field",
			mcp.Description("Optional top-level field such as todos or meData."),
			mcp.Enum(appdata.Fields()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := svc.Data(strings.TrimSpace(request.GetString("field", "")))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(raw)), nil
	})
}

func registerSetFieldTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_field",
		mcp.WithDescription("Replace one top-level field with a JSON value. Missing keys in editableContent and customColors keep their defaults."),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Top-level field to replace."),
			mcp.Enum(appdata.Fields()...),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("JSON encoding of the new value."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field, err := request.RequireString("field")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !json.Valid([]byte(value)) {
			return mcp.NewToolResultError("value must be valid JSON"), nil
		}
		raw, err := svc.SetField(field, json.RawMessage(value))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(raw)), nil
	})
}

func registerSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"dashboard",
		mcp.WithDescription("Today's snapshot: upcoming deadlines, focus todos, goal progress and habits left."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sum, err := svc.Summary()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func registerListItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_items",
		mcp.WithDescription("List todos, goals, exams, habits, books, journal entries, writings or playlist tracks."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of item to list."),
			mcp.Enum(kindNames()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := request.RequireString("kind")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		list, err := svc.List(kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"kind":  kind,
			"items": list,
		})
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Create an item. text is the todo text, goal or writing title, exam subject, habit name, book title, journal content or track title."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of item to create."),
			mcp.Enum(kindNames()...),
		),
		mcp.WithString("text",
			mcp.Description("Main text of the item."),
		),
		mcp.WithString("date",
			mcp.Description("Exam date or goal deadline, YYYY-MM-DD."),
		),
		mcp.WithString("notes",
			mcp.Description("Exam notes."),
		),
		mcp.WithString("author",
			mcp.Description("Book author."),
		),
		mcp.WithString("link",
			mcp.Description("Spotify link or URI for a track."),
		),
		mcp.WithString("content",
			mcp.Description("Writing body."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Kind string `json:"kind"`
			items.Fields
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		created, err := svc.Add(args.Kind, args.Fields)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(created)
	})
}

func registerCompleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"complete_item",
		mcp.WithDescription("Mark an item done: toggles a todo, checks in a habit, sets goal progress or moves a book along."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of item."),
			mcp.Enum(string(items.Todo), string(items.Habit), string(items.Goal), string(items.Book)),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier or unique prefix."),
		),
		mcp.WithString("date",
			mcp.Description("Habit check-in day, YYYY-MM-DD. Defaults to today."),
		),
		mcp.WithNumber("progress",
			mcp.Description("Goal progress percentage. Defaults to 100."),
			mcp.Min(0),
			mcp.Max(100),
		),
		mcp.WithString("status",
			mcp.Description("Book status. Defaults to finished."),
			mcp.Enum(string(appdata.BookToRead), string(appdata.BookReading), string(appdata.BookFinished)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Kind string `json:"kind"`
			ID   string `json:"id"`
			items.Done
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		list, err := svc.Complete(args.Kind, args.ID, args.Done)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Delete an item."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Kind of item."),
			mcp.Enum(kindNames()...),
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier or unique prefix."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := request.RequireString("kind")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		list, err := svc.Delete(kind, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerEditWritingTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_writing",
		mcp.WithDescription("Replace the title and body of a writing piece."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Writing identifier or unique prefix."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("New title."),
		),
		mcp.WithString("content",
			mcp.Description("New body."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title, err := request.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		w, err := svc.EditWriting(id, title, request.GetString("content", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(w)
	})
}

func registerUpdateMeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_me",
		mcp.WithDescription("Set one section of the About Me page."),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Section to set."),
			mcp.Enum("values", "vision", "strengths", "achievements"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("New text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		field, err := request.RequireString("field")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		me, err := svc.UpdateMe(field, request.GetString("value", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(me)
	})
}

func registerSetLabelTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_label",
		mcp.WithDescription("Rename one of the dashboard's headings."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Label key."),
			mcp.Enum(appdata.LabelKeys...),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("New heading text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		labels, err := svc.SetLabel(key, request.GetString("value", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(labels)
	})
}

func registerSetThemeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_theme",
		mcp.WithDescription("Select a named theme or the custom palette."),
		mcp.WithString("theme",
			mcp.Required(),
			mcp.Description("Theme id."),
			mcp.Enum(themeNames()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("theme")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		st, err := svc.SetTheme(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(st)
	})
}

func registerSetColorTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_color",
		mcp.WithDescription("Change one variable of the custom palette. Setting --accent-primary also derives its hover shade."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("CSS variable name."),
			mcp.Enum(appdata.ColorVars...),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Hex color such as #d97706."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		st, err := svc.SetColor(name, value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(st)
	})
}

func registerMusicTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"music",
		mcp.WithDescription("Show the player, load a Spotify link, or play a playlist track."),
		mcp.WithString("action",
			mcp.Description("What to do. Defaults to show."),
			mcp.Enum("show", "load", "play"),
		),
		mcp.WithString("link",
			mcp.Description("Spotify link or URI to load."),
		),
		mcp.WithString("id",
			mcp.Description("Playlist track to play."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var (
			st  Music
			err error
		)
		switch action := request.GetString("action", "show"); action {
		case "load":
			st, err = svc.LoadMusic(request.GetString("link", ""))
		case "play":
			st, err = svc.PlayMusic(request.GetString("id", ""))
		case "show", "":
			if err = svc.ready(); err == nil {
				st = svc.MusicState()
			}
		default:
			err = fmt.Errorf("unknown action %q", action)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(st)
	})
}

func registerLearnTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"learn_search",
		mcp.WithDescription("Find recent articles and videos about a topic, or today's top news."),
		mcp.WithString("topic",
			mcp.Description("Topic to research."),
		),
		mcp.WithBoolean("current_events",
			mcp.Description("Fetch the current events digest instead of a topic."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := svc.Learn(ctx, request.GetString("topic", ""), request.GetBool("current_events", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
