package cmd

import (
	"github.com/sumaaiiraa236/drug-inventory-system/internal/adapters/out/postgres"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddDrugCommandHandler() commands.AddDrugCommandHandler {
	var f commands.DrugUoWFactory = FuncDrugUoWFactory(func() commands.DrugUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDrugCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustDrugStockCommandHandler() commands.AdjustDrugStockCommandHandler {
	var f commands.DrugUoWFactory = FuncDrugUoWFactory(func() commands.DrugUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustDrugStockCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireDrugsCommandHandler() commands.ExpireDrugsCommandHandler {
	var f commands.DrugUoWFactory = FuncDrugUoWFactory(func() commands.DrugUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireDrugsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderInventoryUoWFactory = FuncOrderInventoryUoWFactory(func() commands.OrderInventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockDrugsQueryHandler() queries.GetLowStockDrugsQueryHandler {
	return queries.NewGetLowStockDrugsQueryHandler(c.gormDB)
}

type FuncDrugUoWFactory func() commands.DrugUoW

func (f FuncDrugUoWFactory) Create() commands.DrugUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderInventoryUoWFactory func() commands.OrderInventoryUoW

func (f FuncOrderInventoryUoWFactory) Create() commands.OrderInventoryUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
