// Package config loads planner, feasibility, logging and ground-station link
// settings from HCL files.
//
// A minimal file:
//
//	planner {
//	  heading_offsets = [-10, 0, 10]
//	  vspeed_offsets  = [-1, 0, 1]
//	  neighborhood    = defaults.neighborhood * 2
//	  timeout         = "2s"
//	}
//
//	altitude_band {
//	  min = 50
//	  max = 400
//	}
//
//	keep_out {
//	  points = [[10, 10], [20, 10], [20, 20], [10, 20]]
//	}
//
// Every block and attribute is optional; missing values take the defaults of
// search.DefaultOptions, DefaultLink and logging.DefaultConfig. Expressions may
// reference those defaults through the `defaults` object.
package config
