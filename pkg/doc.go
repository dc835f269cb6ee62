// Package pkg provides the core libraries for urbancharge.
//
// # Overview
//
// Urbancharge places electric-vehicle charging points across the cities of an
// urban community so that every city either has a charging point or is one
// road away from a city that does. In graph terms the charging cities form a
// dominating set of the road graph, and the search strategies try to keep it
// small.
//
// The pkg directory is organized as:
//
//  1. [graph] - Undirected graph over city indices
//  2. [community] - Cities, roads, charging points, and the access invariant
//  3. [solver] - Search strategies that shrink the charging set
//  4. [io] - Text and JSON configuration files
//  5. [render] - Drawing a community with Graphviz
//  6. [cache], [observability], [errors], [buildinfo] - Supporting pieces
//
// # Data Flow
//
//	config file (ville/route/recharge lines or JSON)
//	         ↓
//	    [io] package (parse and validate)
//	         ↓
//	    [community] package (UrbanCommunity)
//	         ↓
//	    [solver] package (naive, less-naive, optimized)
//	         ↓
//	    saved file, table, or SVG/PNG/DOT image
//
// # Quick Start
//
//	uc, err := io.Load("city.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := solver.Run(ctx, uc, solver.Request{Strategy: solver.StrategyOptimized})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.FinalScore, uc.ChargingSet())
//
// [graph]: github.com/urbancharge/urbancharge/pkg/graph
// [community]: github.com/urbancharge/urbancharge/pkg/community
// [solver]: github.com/urbancharge/urbancharge/pkg/solver
// [io]: github.com/urbancharge/urbancharge/pkg/io
// [render]: github.com/urbancharge/urbancharge/pkg/render
// [cache]: github.com/urbancharge/urbancharge/pkg/cache
// [observability]: github.com/urbancharge/urbancharge/pkg/observability
// [errors]: github.com/urbancharge/urbancharge/pkg/errors
// [buildinfo]: github.com/urbancharge/urbancharge/pkg/buildinfo
package pkg
