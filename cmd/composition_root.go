package cmd

import (
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/tariff"
	"parcelhub/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	builder    *services.ConsolidationBuilder
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		builder:    services.NewConsolidationBuilder(tariff.NewDefaultRateTable()),
	}
}

func (c *CompositionRoot) CreateAddLockerItemCommandHandler() commands.AddLockerItemCommandHandler {
	var f commands.LockerItemUoWFactory = FuncLockerItemUoWFactory(func() commands.LockerItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLockerItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateConsolidationCommandHandler() commands.CreateConsolidationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateConsolidationCommandHandler(f, c.builder)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddTrackingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingItemsQueryHandler() queries.GetPendingItemsQueryHandler {
	return queries.NewGetPendingItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalledShipmentsQueryHandler() queries.GetStalledShipmentsQueryHandler {
	return queries.NewGetStalledShipmentsQueryHandler(c.gormDB)
}

type FuncLockerItemUoWFactory func() commands.LockerItemUoW

func (f FuncLockerItemUoWFactory) Create() commands.LockerItemUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
