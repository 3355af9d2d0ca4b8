// Package await provides the asynchronous forms of the solo combinators and
// of the rop factories.
//
// A Future[T] is a pending producer, func(ctx) (T, error). Combinators take a
// Future of a rop.Result and return a new Future, so synchronous and
// asynchronous steps mix freely; wrap a plain result with Ready. Nothing runs
// until the final Future is awaited, and the package starts no goroutines.
//
// A non-nil error from a producer or a step is a fault, not a domain error:
// it is returned to the caller unchanged and never folded into the result.
// Cancellation and deadlines belong to the producers through ctx.
//
//	out, err := await.Match(ctx,
//		await.Then(await.FromValue(loadUser(id)), await.Pure(toView)),
//		func(_ context.Context, v View) (string, error) { return v.Name, nil },
//		func(_ context.Context, errs []rop.Error) (string, error) { return errs[0].Code(), nil })
package await
