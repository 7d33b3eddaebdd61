//-------------------------------------------------------------------------
//
// El Profesional Data Warehouse ETL
//
// Copyright (c) 2025 - 2026, El Profesional
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package clean transforms raw source rows into the conformed dimension and
// fact-input tables of the star schema. Every cleaner is a pure function:
// raw slices in, cleaned slices out, with the order-sensitive rules applied
// as explicit sequential steps.
package clean

import "time"

// Category is a cleaned row of the category dimension. The id is a 9-digit
// composite built from the four hierarchy fragments.
type Category struct {
	ID   int
	Name string
}

// Article is a cleaned row of the article dimension. The id is an 8-digit
// composite of code and subcode; CategoryID always resolves to an existing
// cleaned category.
type Article struct {
	ID         int
	Name       string
	CategoryID int
}

// CustomerType is a cleaned row of the customer-type dimension.
type CustomerType struct {
	ID    int
	Label string
}

// Locality is a row of the static locality dimension.
type Locality struct {
	ID   int
	Name string
}

// Customer is a cleaned row of the customer dimension.
type Customer struct {
	Account    int
	Name       string
	TypeID     int
	LocalityID int
}

// Vendor is a cleaned row of the vendor dimension.
type Vendor struct {
	Code int
	Name string
}

// TimeRow is a derived row of the calendar dimension. The surrogate key is
// assigned by the warehouse at persistence; the timestamp is the lookup key.
type TimeRow struct {
	Timestamp   time.Time
	PartOfDay   string
	WeekdayName string
	DayOfMonth  int
	MonthName   string
	MonthNumber int
	Quarter     int
	HalfYear    int
	Year        int
}

// Order is a cleaned sales header.
type Order struct {
	Number       int
	DocumentCode string
	VendorCode   int
	Timestamp    time.Time
	Account      int
	CustomerName string
	Total        float64
}

// Line is a cleaned sale line, the input of the fact builder.
type Line struct {
	OrderNumber      int
	ArticleID        int
	Quantity         float64
	UnitPrice        float64
	UnitPriceWithTax float64
	Total            float64
}
