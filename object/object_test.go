// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.

package object_test

import (
	"testing"

	"github.com/probechain/monkey-lang/object"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &object.String{Value: "Hello World"}
	hello2 := &object.String{Value: "Hello World"}
	diff1 := &object.String{Value: "My name is johnny"}
	diff2 := &object.String{Value: "My name is johnny"}

	if hello1.HashKey() != hello2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if diff1.HashKey() != diff2.HashKey() {
		t.Errorf("strings with same content have different hash keys")
	}
	if hello1.HashKey() == diff1.HashKey() {
		t.Errorf("strings with different content have same hash keys")
	}
}

func TestIntegerAndBooleanHashKey(t *testing.T) {
	if (&object.Integer{Value: 1}).HashKey() != (&object.Integer{Value: 1}).HashKey() {
		t.Errorf("integers with same value have different hash keys")
	}
	if (&object.Integer{Value: 1}).HashKey() == (&object.Integer{Value: 2}).HashKey() {
		t.Errorf("integers with different value have same hash keys")
	}
	if (&object.Boolean{Value: true}).HashKey() == (&object.Boolean{Value: false}).HashKey() {
		t.Errorf("true and false must hash differently")
	}
}

func TestEnvironmentShadowingDoesNotLeakOutward(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Set("x", &object.Integer{Value: 5})

	inner := object.NewEnclosedEnvironment(outer)
	inner.Set("x", &object.Integer{Value: 10})

	got, ok := outer.Get("x")
	if !ok {
		t.Fatalf("outer binding of x disappeared")
	}
	if got.(*object.Integer).Value != 5 {
		t.Errorf("outer x = %d, want 5 (inner Set must not mutate outer frame)", got.(*object.Integer).Value)
	}

	got, ok = inner.Get("x")
	if !ok || got.(*object.Integer).Value != 10 {
		t.Errorf("inner x lookup failed or wrong value")
	}
}

func TestEnvironmentGetWalksOuterChain(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Set("y", &object.Integer{Value: 99})
	inner := object.NewEnclosedEnvironment(outer)

	got, ok := inner.Get("y")
	if !ok {
		t.Fatalf("inner.Get(y) did not find outer binding")
	}
	if got.(*object.Integer).Value != 99 {
		t.Errorf("y = %d, want 99", got.(*object.Integer).Value)
	}

	if _, ok := outer.Get("nonexistent"); ok {
		t.Errorf("Get found a binding that was never set")
	}
}
