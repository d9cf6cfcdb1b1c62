// Package pedidos contiene las reglas puras del flujo de estados de un pedido:
// el grafo de transiciones legales y la autorización por rol. No tiene
// dependencias de persistencia y se prueba de forma aislada.
package pedidos

import (
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

// Actor es el principal que intenta una operación sobre un pedido.
// El rol proviene del proveedor de autenticación y se confía tal cual.
type Actor struct {
	ID  string
	Rol string
}

// transiciones es el grafo global de aristas legales, independiente del rol.
// Una arista fuera de este grafo es ilegal para todos, incluido el admin:
// pendiente -> entregado directo, o salir de un estado terminal, nunca procede.
var transiciones = map[entity.EstadoPedido][]entity.EstadoPedido{
	entity.EstadoPendiente:  {entity.EstadoConfirmado, entity.EstadoCancelado},
	entity.EstadoConfirmado: {entity.EstadoDespachado, entity.EstadoEnCamino, entity.EstadoCancelado},
	entity.EstadoDespachado: {entity.EstadoEnCamino, entity.EstadoEntregado, entity.EstadoCancelado},
	entity.EstadoEnCamino:   {entity.EstadoEntregado, entity.EstadoCancelado},
	entity.EstadoEntregado:  {},
	entity.EstadoCancelado:  {},
}

// TransicionValida indica si la arista (de -> a) existe en el grafo global.
func TransicionValida(de, a entity.EstadoPedido) bool {
	for _, destino := range transiciones[de] {
		if destino == a {
			return true
		}
	}
	return false
}

// AutorizarTransicion valida que el actor pueda mover el pedido de su estado
// actual al estado nuevo, con el motivo dado (relevante solo para cancelar).
//
// Orden de validación: primero la legalidad global de la arista
// (ErrEstadoInvalido), luego los derechos del rol sobre esa arista
// (ErrForbidden o ErrEstadoInvalido según el caso) y por último la exigencia
// de motivo al cancelar (ErrMotivoRequerido).
func AutorizarTransicion(actor Actor, pedido *entity.Pedido, nuevo entity.EstadoPedido, motivo string) error {
	if !nuevo.EsValido() {
		return domain.ErrInvalidInput
	}
	if !TransicionValida(pedido.Estado, nuevo) {
		return domain.ErrEstadoInvalido
	}

	switch actor.Rol {
	case entity.RolAdmin:
		// Cualquier arista del grafo; cancelar exige motivo igual que los demás roles.
		if nuevo == entity.EstadoCancelado && motivo == "" {
			return domain.ErrMotivoRequerido
		}
		return nil

	case entity.RolCliente:
		// Solo cancelar su propio pedido pendiente; sin motivo obligatorio.
		if pedido.ClienteID != actor.ID {
			return domain.ErrForbidden
		}
		if nuevo != entity.EstadoCancelado {
			return domain.ErrForbidden
		}
		if pedido.Estado != entity.EstadoPendiente {
			return domain.ErrEstadoInvalido
		}
		return nil

	case entity.RolVendedor:
		if pedido.VendedorID == nil || *pedido.VendedorID != actor.ID {
			return domain.ErrForbidden
		}
		switch nuevo {
		case entity.EstadoConfirmado:
			if pedido.Estado != entity.EstadoPendiente {
				return domain.ErrEstadoInvalido
			}
			return nil
		case entity.EstadoEnCamino:
			if pedido.Estado != entity.EstadoConfirmado && pedido.Estado != entity.EstadoDespachado {
				return domain.ErrEstadoInvalido
			}
			return nil
		case entity.EstadoEntregado:
			if pedido.Estado != entity.EstadoDespachado && pedido.Estado != entity.EstadoEnCamino {
				return domain.ErrEstadoInvalido
			}
			return nil
		case entity.EstadoCancelado:
			if pedido.Estado != entity.EstadoPendiente && pedido.Estado != entity.EstadoConfirmado {
				return domain.ErrEstadoInvalido
			}
			if motivo == "" {
				return domain.ErrMotivoRequerido
			}
			return nil
		default:
			// Despachar es exclusivo de bodega/admin.
			return domain.ErrForbidden
		}

	case entity.RolBodeguero:
		switch nuevo {
		case entity.EstadoDespachado:
			if pedido.Estado != entity.EstadoConfirmado {
				return domain.ErrEstadoInvalido
			}
			return nil
		case entity.EstadoCancelado:
			// El grafo ya excluye estados terminales.
			if motivo == "" {
				return domain.ErrMotivoRequerido
			}
			return nil
		default:
			return domain.ErrForbidden
		}
	}

	return domain.ErrForbidden
}

// AutorizarReclamo valida que el actor pueda reclamar (asignarse) el pedido.
// Solo vendedores y administradores, sobre pedidos pendientes sin vendedor.
// El reclamo no es una transición de estado y no genera entrada de historial.
func AutorizarReclamo(actor Actor, pedido *entity.Pedido) error {
	if actor.Rol != entity.RolVendedor && actor.Rol != entity.RolAdmin {
		return domain.ErrForbidden
	}
	if pedido.Estado != entity.EstadoPendiente {
		return domain.ErrEstadoInvalido
	}
	if pedido.Asignado() {
		return domain.ErrYaAsignado
	}
	return nil
}
