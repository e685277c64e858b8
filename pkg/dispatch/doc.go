// Package dispatch provides the public types, interfaces, and error helpers
// for the dispatch API client.
//
// # Overview
//
// The dispatch package defines the domain types (Project, User, APIKey, File),
// the resource client interfaces (ProjectsClient, UsersClient, ...), the
// configuration record, and the typed errors returned by every call. A
// concrete client is provided by the dispatchclient package:
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
//	  cli, err := dispatchclient.New(&dispatch.Config{
//	    BaseURL: "https://api.example.com",
//	    Token:   "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Errors
//
// Every call fails with one of three kinds of error:
//
//   - *APIError: the server answered with a non-2xx status, or with a 2xx
//     response that did not declare JSON when a value was expected. Inspect
//     StatusCode and Body.
//   - *CanceledError: the caller's context or the client's default timeout
//     fired before a response arrived. Cause holds the originating reason;
//     IsTimeout reports whether the timeout fired first.
//   - any other error: the transport failed before producing a response
//     (DNS, connection refused, reset). It is returned as net/http produced it.
//
// Use IsAPIError, IsCanceled, IsTimeout, IsNotFound and friends to branch.
//
// # Cancellation
//
// The context passed to each call is its cancellation handle. It is merged
// with the client's default timeout; whichever fires first cancels the
// request and determines the reported cause.
package dispatch
