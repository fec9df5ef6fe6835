package navgrid

import "context"

// Query is one start/goal pair for FindPaths.
type Query struct {
	Start Coord
	Goal  Coord
}

// pathTask represents a request from the orchestrator to the workers.
type pathTask struct {
	Index int
	Query Query
}

// pathOutcome is a worker's finished search for one task.
type pathOutcome struct {
	Index  int
	Result Result
}

// FindPaths runs one independent search per query on a pool of workers and
// returns the results in query order. lookup is read concurrently and must not
// be mutated until FindPaths returns.
func FindPaths(ctx context.Context, lookup CellLookup, bounds Bounds, queries []Query, options ...Option) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	searchOptions := applyOptions(options)
	results := make([]Result, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskChannel := make(chan pathTask)
	outcomeChannel := make(chan pathOutcome)

	numberOfWorkers := min(searchOptions.NumberOfWorkers, len(queries))
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-taskChannel:
					if !ok {
						return
					}
					result := newSearch(lookup, task.Query.Start, task.Query.Goal, bounds, searchOptions).run()
					select {
					case outcomeChannel <- pathOutcome{Index: task.Index, Result: result}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(taskChannel)
		for i, query := range queries {
			select {
			case taskChannel <- pathTask{Index: i, Query: query}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for i := 0; i < len(queries); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case outcome := <-outcomeChannel:
			results[outcome.Index] = outcome.Result
		}
	}
	return results, nil
}
