// Package tnfile reads and writes the plain-text network format and encodes
// instance parameters in file names.
//
// Format (newline separated, single spaces):
//
//	<n> <m> <o>
//	<u_1> <v_1> <w_1>
//	...
//	<u_m> <v_m> <w_m>
//	<vertex_1> <dim_1>
//	...
//	<vertex_o> <dim_o>
//
// Edges and open legs appear in insertion order. In closed leg mode o is 0
// and the open-leg rows are omitted.
//
// File names: <n>_<m>_<family>_<leg>_<k-v>[_<k-v>...].in, for example
// 6_7_peps_open_width-2_height-3.in. A spanning tree of a network file is
// written next to it as <method>-<base>.
package tnfile
