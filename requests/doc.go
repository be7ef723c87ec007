// Package requests is the request model and dispatcher of transitdb.
//
// Decoded records (Record, Batch) are parsed into a closed set of request
// variants - AddStop, AddBus, StopQuery and BusQuery - and a Dispatcher applies
// them to a transit.Catalogue in two phases.
//
// # Usage
//
//	reqs, err := requests.ParseBatch(batch)
//	if err != nil {
//	    // malformed input: nothing was applied
//	}
//
//	d := requests.NewDispatcher(transit.NewCatalogue(), requests.DefaultOptions())
//	res, err := d.Run(reqs)
//	for _, a := range res.Answers {
//	    // one answer per query, in input order, carrying the query id
//	}
//
// # Two-phase protocol
//
// Run applies every mutation in the order received, seals the catalogue, then
// evaluates every query against the final state. No query observes a partially
// applied batch, and a mutation attempted after sealing fails with
// transit.ErrSealed.
//
// # Errors
//
// Unknown stops and buses, missing distances and missing coordinates are
// reported in Answer.Err and never abort sibling queries. Malformed records
// (ErrMalformedInput) and ingest failures fail the whole batch.
//
// # Thread Safety
//
// A Dispatcher and its catalogue are owned by one goroutine for one batch.
package requests
