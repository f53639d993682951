// Package classify turns raw AML records into install items.
//
// Classification is a pure function of one record: the dependency-check
// marker wins over the action verb, which wins over the is-script marker.
// Verbs fall into three buckets:
//
//   - add, merge, create: the record installs the entity (Create);
//   - BenignVerbs: the record mutates an existing entity (Script), and the
//     entity itself becomes a dependency;
//   - anything else: the record invokes a server method of that name
//     (Script), and the Method becomes a dependency.
//
// Script items are re-keyed under the "*Script" sentinel kind so that several
// actions against the same entity stay distinct.
//
// A batch is processed in two passes: ClassifyAll classifies every record,
// possibly in parallel, and only then runs Backfill, which needs to see every
// Create item regardless of record order.
package classify
