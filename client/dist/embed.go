package clientdist

import _ "embed"

// ScriptPath is where the runtime is written in the output directory and
// served by the dev server.
const ScriptPath = "_marquee/marquee.js"

// MarqueeJS binds data-hook widgets (menu toggle, carousel) in the browser.
//
//go:embed marquee.js
var MarqueeJS []byte
