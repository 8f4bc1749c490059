// Package encode turns line values into embeddable image sources.
//
// QR codes are rasterized to PNG (boombuler/barcode for the symbol,
// disintegration/imaging for scaling and the quiet zone). Linear bar codes
// are drawn as SVG with beevik/etree. Both end up as base64 data URIs, so
// the generated document stays self-contained.
package encode
