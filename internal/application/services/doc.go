// Package services contains the multi-repository workflows: composite form
// creation, field definition management, people and the analytics rollup.
//
// Services receive a ports.UnitOfWork and bind repositories per call, either
// to the connection pool or to a single transaction.
package services
