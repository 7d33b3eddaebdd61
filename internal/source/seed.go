package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elprofesional/dw-etl/internal/datagen"
	"github.com/elprofesional/dw-etl/internal/logging"
)

// SeedConfig controls how much data the seeder generates and how dirty it is.
type SeedConfig struct {
	Categories       int
	Articles         int
	Customers        int
	Vendors          int
	Orders           int
	MaxLinesPerOrder int

	// DirtyRatio is the fraction of rows generated with deliberate defects
	// (nulls, negatives, unknown foreign keys, cancellation markers) so a
	// seeded database exercises every cleaning rule.
	DirtyRatio float64
}

// Seeder populates a development source database with fake operational data.
type Seeder struct {
	faker *datagen.Faker
	cfg   SeedConfig

	articleCodes []int
	accounts     []string
	vendorCodes  []string
}

// NewSeeder creates a seeder with a random seed.
func NewSeeder(cfg SeedConfig) *Seeder {
	return &Seeder{faker: datagen.NewFaker(), cfg: cfg}
}

// NewSeederWithSeed creates a seeder with a fixed seed for reproducible data.
func NewSeederWithSeed(cfg SeedConfig, seed uint64) *Seeder {
	return &Seeder{faker: datagen.NewFakerWithSeed(seed), cfg: cfg}
}

// Seed fills the operational tables. The schema must already exist.
func (s *Seeder) Seed(ctx context.Context, pool *pgxpool.Pool) error {
	logging.Info().
		Int("categories", s.cfg.Categories).
		Int("articles", s.cfg.Articles).
		Int("customers", s.cfg.Customers).
		Int("vendors", s.cfg.Vendors).
		Int("orders", s.cfg.Orders).
		Float64("dirty_ratio", s.cfg.DirtyRatio).
		Msg("Seeding source database")

	if err := s.seedCategories(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed %s: %w", TableRubros, err)
	}
	if err := s.seedArticles(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed %s: %w", TableArticulos, err)
	}
	if err := s.seedCustomerTypes(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed %s: %w", TableTipoCliente, err)
	}
	if err := s.seedCustomers(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed %s: %w", TableClientes, err)
	}
	if err := s.seedVendors(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed %s: %w", TableVendedor, err)
	}
	if err := s.seedSales(ctx, pool); err != nil {
		return fmt.Errorf("failed to seed sales: %w", err)
	}

	logging.Info().Msg("Source database seeded")
	return nil
}

// dirty reports whether the next generated row should carry a defect.
func (s *Seeder) dirty() bool {
	return s.faker.Float(0, 1) < s.cfg.DirtyRatio
}

func (s *Seeder) seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	for i := 0; i < s.cfg.Categories; i++ {
		rubro := s.faker.Int(1, 99)
		sub1 := s.faker.Int(0, 50)
		sub2 := s.faker.Int(0, 20)
		sub3 := s.faker.Int(0, 9)
		name := s.faker.ProductName()
		batch.Queue(`
            INSERT INTO "Rubros" ("Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre")
            VALUES ($1, $2, $3, $4, $5)
        `, rubro, sub1, sub2, sub3, name)
	}
	return pool.SendBatch(ctx, batch).Close()
}

func (s *Seeder) seedArticles(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}

	// The sentinel articles the pipeline renames and redirects to.
	batch.Queue(`
        INSERT INTO "Articulos" ("Codigo", "Subcodigo", "Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre")
        VALUES (999998, 0, 0, 0, 0, 0, 'VARIOS')
    `)
	batch.Queue(`
        INSERT INTO "Articulos" ("Codigo", "Subcodigo", "Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre")
        VALUES (999997, 0, 0, 0, 0, 0, 'DESCUENTOS')
    `)
	s.articleCodes = append(s.articleCodes, 999998)

	for i := 0; i < s.cfg.Articles; i++ {
		code := s.faker.Int(1, 899999)
		sub := s.faker.Int(0, 5)
		rubro := s.faker.Int(1, 99)
		name := s.faker.ProductName()

		var codeArg, subArg any = code, sub
		var nameArg any = name
		if s.dirty() {
			switch s.faker.Int(0, 2) {
			case 0:
				codeArg = nil
			case 1:
				subArg = -1
			case 2:
				nameArg = ""
			}
		}
		batch.Queue(`
            INSERT INTO "Articulos" ("Codigo", "Subcodigo", "Rubro", "Subrubro1", "Subrubro2", "Subrubro3", "Nombre")
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `, codeArg, subArg, rubro, s.faker.Int(0, 50), s.faker.Int(0, 20), s.faker.Int(0, 9), nameArg)

		if codeArg != nil && nameArg != "" {
			s.articleCodes = append(s.articleCodes, code)
		}
	}
	return pool.SendBatch(ctx, batch).Close()
}

func (s *Seeder) seedCustomerTypes(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	types := map[int]string{
		1: "CUENTA CORRIENTE",
		2: "CONTADO",
		3: "TARJETA",
		7: "CONVENIO", // outside the fixed mapping, cleaned to UNKNOWN
	}
	for id, desc := range types {
		batch.Queue(`INSERT INTO "TipoCliente" ("IDTipoCliente", "Descripcion") VALUES ($1, $2)`, id, desc)
	}
	return pool.SendBatch(ctx, batch).Close()
}

func (s *Seeder) seedCustomers(ctx context.Context, pool *pgxpool.Pool) error {
	localities := []string{
		"PARANA", "Paraná", "Paraná Centro", "PARNA",
		"SANTA FE", "Santa fe Oeste", "STA FE", "SANTO TOME",
		"Rosario", "Crespo", "Oro Verde", "",
	}

	batch := &pgx.Batch{}

	// The fallback customer every unresolvable sale redirects to.
	batch.Queue(`
        INSERT INTO "Clientes" ("NroCuenta", "Nombre", "TipoCliente", "Localidad")
        VALUES (100, 'CONSUMIDOR FINAL', 2, 'PARANA')
    `)
	s.accounts = append(s.accounts, "100")

	for i := 0; i < s.cfg.Customers; i++ {
		account := 1000 + i
		name := s.faker.Name()
		locality := localities[s.faker.Int(0, len(localities)-1)]

		var typeArg any = s.faker.Int(1, 3)
		if s.dirty() {
			switch s.faker.Int(0, 1) {
			case 0:
				typeArg = nil
			case 1:
				typeArg = 0
			}
		}
		batch.Queue(`
            INSERT INTO "Clientes" ("NroCuenta", "Nombre", "TipoCliente", "Localidad")
            VALUES ($1, $2, $3, $4)
        `, account, name, typeArg, locality)
		s.accounts = append(s.accounts, fmt.Sprintf("%d", account))
	}
	return pool.SendBatch(ctx, batch).Close()
}

func (s *Seeder) seedVendors(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}

	// The fallback vendor every unresolvable sale redirects to.
	batch.Queue(`INSERT INTO "Vendedor" ("IDVendedor", "Nombre") VALUES (1, 'TODOS')`)
	s.vendorCodes = append(s.vendorCodes, "1")

	for i := 0; i < s.cfg.Vendors; i++ {
		code := 10 + i
		batch.Queue(`INSERT INTO "Vendedor" ("IDVendedor", "Nombre") VALUES ($1, $2)`, code, s.faker.Name())
		s.vendorCodes = append(s.vendorCodes, fmt.Sprintf("%d", code))
	}

	// Credit-note placeholder row the cleaner drops.
	batch.Queue(`INSERT INTO "Vendedor" ("IDVendedor", "Nombre") VALUES (99, 'NOTA DE CREDITO')`)

	return pool.SendBatch(ctx, batch).Close()
}

func (s *Seeder) seedSales(ctx context.Context, pool *pgxpool.Pool) error {
	start := time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC)

	batch := &pgx.Batch{}
	queued := 0
	flush := func() error {
		if queued == 0 {
			return nil
		}
		if err := pool.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
		batch = &pgx.Batch{}
		queued = 0
		return nil
	}

	for i := 0; i < s.cfg.Orders; i++ {
		order := 50000 + i
		// One minute apart keeps timestamps unique across the run.
		ts := start.Add(time.Duration(i) * time.Minute)
		fecha := ts.Format("2006-01-02")
		hora := ts.Format("15:04:05")

		comprobante := fmt.Sprintf("F%07d", order)
		vendor := s.vendorCodes[s.faker.Int(0, len(s.vendorCodes)-1)]
		account := s.accounts[s.faker.Int(0, len(s.accounts)-1)]
		name := s.faker.Name()
		total := s.faker.Price(100, 50000)

		var (
			compArg    any = comprobante
			vendorArg  any = vendor
			accountArg any = account
			nameArg    any = name
			totalArg   any = total
		)
		if s.dirty() {
			switch s.faker.Int(0, 5) {
			case 0:
				compArg = fmt.Sprintf("R%07d", order) // remito, filtered out
			case 1:
				vendorArg = "0"
			case 2:
				accountArg = " "
			case 3:
				nameArg = "CANCELADO " + fecha
			case 4:
				totalArg = -total
			case 5:
				nameArg = nil
			}
		}

		batch.Queue(`
            INSERT INTO "CabVentas" ("NroOrden", "Comprobante", "IDVendedor", "Fecha", "Hora", "NroCuenta", "Nombre", "ImporteTotal")
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `, order, compArg, vendorArg, fecha, hora, accountArg, nameArg, totalArg)
		queued++

		lines := s.faker.Int(1, s.cfg.MaxLinesPerOrder)
		for l := 0; l < lines; l++ {
			code := s.articleCodes[s.faker.Int(0, len(s.articleCodes)-1)]
			qty := float64(s.faker.Int(1, 12))
			price := s.faker.Price(50, 5000)

			var (
				codeArg any = code
				qtyArg  any = qty
			)
			if s.dirty() {
				switch s.faker.Int(0, 2) {
				case 0:
					codeArg = nil
				case 1:
					qtyArg = 0.0
				case 2:
					codeArg = 777777 // not in Articulos, redirected to OTHER
				}
			}
			batch.Queue(`
                INSERT INTO "ItemVentas" ("NroOrden", "Codigo", "Subcodigo", "Cantidad", "PrecioUnitario", "PrecioUnitarioIVA", "Importe")
                VALUES ($1, $2, $3, $4, $5, $6, $7)
            `, order, codeArg, 0, qtyArg, price, price*1.21, qty*price*1.21)
			queued++
		}

		if queued >= 500 {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
