// Package railpath computes travel routes between two stations of a rail
// network and ranks them against rider objectives: shortest ride, lowest
// fare, fewest line changes, or a blended score.
//
// What is in the box:
//
//	core/       the network: stations, line-labelled edges, mirrored adjacency
//	route/      Outcome (a found route or NotFound), label chains, priority queue
//	bfs/        fewest hops
//	transfer/   fewest line changes over (station, line) states
//	greedy/     best-first on the cheapest next edge (fast, not optimal)
//	dijkstra/   cumulative shortest path by distance, cost or duration
//	strategy/   one Kind per search, a uniform Func and a timing harness
//	aggregate/  single, top-k, median and weighted-sum route selection
//	dataset/    CSV edge tables and GTFS feeds into a core.Graph
//	chindex/    contraction-hierarchies distance index for cross-checks
//	geoexport/  GeoJSON FeatureCollection of a network
//	render/     plain-text route and timing output
//	dfs/        depth-first route enumeration and reachability
//	builder/    synthetic corridor, loop, grid and random networks
//	logging/    slog JSON logger helpers
//
// Quick ASCII example:
//
//	    A ──X── B
//	     \      │
//	      Y     X
//	       \    │
//	        ─── C
//
// Hop and transfer search take the direct Y hop A→C; the cumulative search
// on distance rides X twice (20 km against 30 km).
//
// The railroute command wires all of it together:
//
//	go run ./cmd/railroute -file network.csv -from A -to C -objective cheapest
package railpath
