// Package script provides the data-script parser for the config loader.
//
// A data script is a JavaScript file evaluated in a fresh goja runtime. The
// runtime exposes no host bindings besides a "module" object, so a script can
// compute values but cannot touch the filesystem, network or environment.
//
// The produced value is, in order of preference:
//   - module.exports, when the script assigned it
//   - otherwise the completion value of the script (its last expression)
//
// If that value is a function it is called with no arguments and its return
// value is used instead. The final value must be an object:
//
//	// config.js
//	module.exports = function () {
//	    return { db: { host: "localhost", port: 5000 + 432 } };
//	};
//
// Evaluation is bounded by a timeout (see WithTimeout); a script that runs past
// it is interrupted and fails with ErrTimeout.
package script
