// Package construct defines the specimen data model.
//
// This package contains type definitions only. All other internal packages
// import construct; construct imports nothing internal. This keeps the data
// model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Scalar is a tagged sum type, never overlapping storage. Reading a
//     value through the wrong kind is an error, not a reinterpretation.
//   - Enum ordinals are stable: Red=0, Green=1, Blue=2.
//   - Point is immutable by convention: nothing mutates one after
//     construction.
package construct
