// Package fetch provides a reusable single-consumer data fetcher: one
// Fetcher drives one asynchronous producer and exposes its
// data/loading/error lifecycle as a snapshot for a UI consumer.
//
// # Latest Producer, Explicit Triggers
//
// Callers may hand the fetcher a structurally new producer closure as
// often as they like (SetProducer); that alone never triggers a call.
// Invocation happens only through the mount-once auto-fetch gate (Mount)
// and explicit Fetch calls, and whichever closure was set most recently
// is the one invoked. "Which function to call" and "when to call it" are
// deliberately decoupled.
//
//	f := fetch.New[admin.DashboardData](func(ctx context.Context) (any, error) {
//		return admin.NewService(c).Dashboard(ctx)
//	})
//	f.Mount(ctx) // fires the producer; further Mount calls are no-ops
//
//	st := f.State()
//	if st.Err != "" { ... }
//
// # Envelope Tolerance
//
// Producers may return either a bare value or an enveloped response
// (anything exposing Payload() (any, bool), such as *client.Envelope).
// Enveloped results are unwrapped to their payload before being stored.
// This is a compatibility shim for mixed call sites, not a
// general-purpose feature; producers returning a payload of the wrong
// type surface ErrUnexpectedPayload.
//
// # Known Race
//
// There is no in-flight guard. Two overlapping Fetch calls both proceed,
// and whichever completes last wins the final data write; each
// completion clears the loading flag. A stale response can therefore
// overwrite a fresher one. Candidate hardening would be sequence-gated
// writes, left unimplemented to keep the observable contract.
package fetch
