package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"todofeed/client/controller"
	"todofeed/client/repository"
	"todofeed/config"
	"todofeed/infras/otel"
	"todofeed/shared/constant"
	"todofeed/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
	exitUsage = 2
	usage     = "usage: todo list [page] | add <content> | toggle <id> | rm <id> | search <term> [page]"
)

var (
	errUsage  = errors.New(usage)
	errFailed = errors.New("request failed")
)

func main() {
	logger.InitLogger(os.Stderr)

	cfg := config.Get()
	logger.SetLogLevel(cfg, zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := controller.New(repository.New(cfg, otel.New(cfg)), cfg)

	if err := run(ctx, ctrl, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(exitUsage)
		}

		log.Fatal().Err(err).Msg("todo command failed")
	}
}

func run(ctx context.Context, ctrl *controller.Todo, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		page, err := pageArg(args, 1)
		if err != nil {
			return err
		}

		return list(ctx, ctrl, page, "", out)
	case "search":
		if len(args) < argLength {
			return errUsage
		}

		page, err := pageArg(args, argLength)
		if err != nil {
			return err
		}

		return list(ctx, ctrl, page, args[1], out)
	case "add":
		if len(args) < argLength {
			return errUsage
		}

		return printResult(<-ctrl.Create(ctx, strings.Join(args[1:], " ")), out)
	case "toggle":
		if len(args) != argLength {
			return errUsage
		}

		return printResult(<-ctrl.ToggleDone(ctx, args[1]), out)
	case "rm":
		if len(args) != argLength {
			return errUsage
		}

		if err := ctrl.DeleteByID(ctx, args[1]); err != nil {
			return fmt.Errorf("failed to delete todo: %w", err)
		}

		fmt.Fprintf(out, "deleted %s\n", args[1])

		return nil
	default:
		return errUsage
	}
}

func pageArg(args []string, idx int) (int, error) {
	if len(args) <= idx {
		return constant.DefaultValuePage, nil
	}

	page, err := strconv.Atoi(args[idx])
	if err != nil || page < 1 {
		return 0, errUsage
	}

	return page, nil
}

func list(ctx context.Context, ctrl *controller.Todo, page int, search string, out io.Writer) error {
	res, err := ctrl.Get(ctx, page)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}

	todos := res.Todos
	if search != "" {
		todos = controller.FilterTodosByContent(search, todos)
	}

	for _, todo := range todos {
		printTodo(todo, out)
	}

	fmt.Fprintf(out, "page %d of %d, %d todos\n", page, res.Pages, res.Total)

	return nil
}

func printResult(res controller.Result, out io.Writer) error {
	if !res.OK {
		return errFailed
	}

	printTodo(res.Todo, out)

	return nil
}

func printTodo(todo repository.Todo, out io.Writer) {
	mark := " "
	if todo.Done {
		mark = "x"
	}

	fmt.Fprintf(out, "[%s] %s  %s  %s\n", mark, todo.ID, todo.Date.Format(constant.DateFormat), todo.Content)
}
