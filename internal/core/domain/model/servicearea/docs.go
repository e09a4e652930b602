// Package servicearea implements the ServiceArea aggregate and its polygon
// geometry: point-in-ring containment, point-to-boundary distance, and
// ring-overlap measurement.
//
// Service areas are administrator-defined geographic polygons with a coverage
// status. They gate delivery eligibility: a delivery address or a courier's
// live position counts as serviceable only when it falls inside an active
// area's boundary. Pincodes are carried as a coarse fallback for callers that
// have no coordinate.
package servicearea
