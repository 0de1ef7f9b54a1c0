// Package client is a small Go SDK for the ares-core HTTP API.
//
// It serves two kinds of callers. Collaborating services that just want to
// emit log lines use Send, which is fire-and-forget: it never returns an
// error and never blocks the caller beyond a short timeout, because losing a
// log line must not take the emitting service down with it.
//
//	c := client.New("http://127.0.0.1:8080", client.WithToken(os.Getenv("ARES_AUTH_TOKEN")), client.WithService("billing"))
//	c.Send("INFO", "invoice generated")
//
// Tools that need to observe failures use the explicit variants:
//
//	seqs, err := c.Ingest(ctx, client.Entry{Level: "INFO", Service: "billing", Message: "invoice generated"})
//	entries, err := c.Query(ctx, "ERROR", "billing")
package client
