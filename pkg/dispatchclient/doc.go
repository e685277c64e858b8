// Package dispatchclient is the entry point for constructing an API client
// that implements the dispatch.Client interface.
//
// It normalizes and validates a dispatch.Config, then wires the request
// dispatcher and the resource clients behind it.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/dispatch/pkg/dispatch"
//	  "github.com/fivetwenty-io/dispatch/pkg/dispatchclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := dispatchclient.New(&dispatch.Config{
//	    BaseURL: "https://api.example.com",
//	    Token:   "dk_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// Every call takes a context. Canceling it, or letting the client's default
// timeout (30s unless Config.Timeout says otherwise) expire, aborts the
// request with a *dispatch.CanceledError:
//
//	ctx, cancel := context.WithCancelCause(ctx)
//	go func() { <-stop; cancel(errors.New("user pressed stop")) }()
//	_, err := cli.Users().Me(ctx)
//	if dispatch.IsTimeout(err) { ... }
package dispatchclient
