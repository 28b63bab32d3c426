// Package publish uploads a built landing page to an S3 bucket.
//
// Every file under the output directory becomes one object. Keys are the
// file's path relative to the output, behind an optional prefix:
//
//	dist/index.html          -> <prefix>/index.html
//	dist/css/style.css       -> <prefix>/css/style.css
//	dist/_marquee/marquee.js -> <prefix>/_marquee/marquee.js
//
// Objects carry a Content-Type derived from the file extension. HTML is
// stored with "Cache-Control: no-cache" and everything else is cached for
// an hour.
//
// Credentials come from the standard AWS environment (variables, shared
// config files, instance roles). A dry run lists the objects without
// touching AWS.
package publish
