//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides data generation utilities for the seed command.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Int generates a random integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float generates a random float in [min, max].
func (f *Faker) Float(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Name generates a random person name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// ProductName generates a random product name.
func (f *Faker) ProductName() string {
	return f.faker.ProductName()
}

// Price generates a random price in [min, max].
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// DateBetween generates a random time in [start, end].
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}
