// Package talus computes Morse complexes and topological persistence of
// scalar fields sampled on graphs: terrain grids, meshes, sensor networks.
//
// What is talus?
//
//	An in-memory toolkit that brings together:
//		• core      – thread-safe undirected graph whose vertices carry a scalar value
//		• morse     – descending/ascending Morse complexes, persistence,
//		              filtration, simplification and Morse-Smale crystals
//		• gridgraph – 2D elevation grids as graphs, level-set components
//		• bfs       – connected components by breadth-first search
//		• converters – import/export of gonum graphs
//		• cli       – the `talus grid` command (YAML in, YAML report and
//		              ESRI ASCII persistence raster out)
//
// Every vertex is assigned to the basin of the extremum its steepest path
// reaches. Basins merge at saddles; the lesser extremum dies and its
// persistence is the value gap to the saddle. The global extremum of each
// connected component never dies and has infinite persistence.
//
// Quick ASCII example:
//
//	 5 ─ 1 ─ 4 ─ 0 ─ 9
//
//	descending persistence: 5 → 5, 4 → 3, 9 → +Inf, the rest 0.
//
//	go install github.com/katalvlaran/talus/cmd/talus@latest
package talus
