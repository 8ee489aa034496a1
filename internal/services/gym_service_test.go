package services

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

func TestGymService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GymService Suite")
}

var _ = Describe("GymService", func() {
	var (
		ctx         context.Context
		gymRepo     *fakeGymRepository
		machineRepo *fakeMachineRepository
		service     *GymService
		gym         *entities.Gym
		machine     *entities.Machine
	)

	BeforeEach(func() {
		ctx = context.Background()
		gymRepo = newFakeGymRepository()
		machineRepo = newFakeMachineRepository()
		service = NewGymService(gymRepo, machineRepo, fakeUnitOfWork{}, noopLogger{})

		gym = &entities.Gym{
			ID:        "65a000000000000000000001",
			Name:      "Academia Centro",
			City:      "São Paulo",
			Country:   "BR",
			PriceTier: entities.PriceTierStandard,
		}
		gymRepo.add(gym)

		machine = &entities.Machine{
			ID:   "65a000000000000000000101",
			Name: "Leg Press 45",
			Type: entities.MachineStrength,
		}
		machineRepo.add(machine)
	})

	Describe("LinkMachine", func() {
		It("insere uma entrada nova quando a máquina ainda não está no inventário", func() {
			result, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     gym.ID,
				MachineID: machine.ID,
				Quantity:  3,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Inventory).To(HaveLen(1))
			Expect(result.Inventory[0].MachineID).To(Equal(machine.ID))
			Expect(result.Inventory[0].Quantity).To(Equal(3))
		})

		It("acumula quantidades em uma única entrada por máquina", func() {
			for i := 0; i < 2; i++ {
				_, err := service.LinkMachine(ctx, LinkMachineInput{
					GymID:     gym.ID,
					MachineID: machine.ID,
					Quantity:  3,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			stored, err := service.GetGym(ctx, gym.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Inventory).To(HaveLen(1))
			Expect(stored.Inventory[0].Quantity).To(Equal(6))
		})

		It("sobrescreve os campos de manutenção quando enviados", func() {
			serviced := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
			area := "piso térreo"

			_, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     gym.ID,
				MachineID: machine.ID,
				Quantity:  1,
			})
			Expect(err).NotTo(HaveOccurred())

			result, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:          gym.ID,
				MachineID:      machine.ID,
				Quantity:       1,
				LastServicedAt: &serviced,
				AreaNote:       &area,
			})
			Expect(err).NotTo(HaveOccurred())

			entry := result.InventoryEntryFor(machine.ID)
			Expect(entry).NotTo(BeNil())
			Expect(entry.Quantity).To(Equal(2))
			Expect(entry.LastServicedAt).To(HaveValue(Equal(serviced)))
			Expect(entry.AreaNote).To(HaveValue(Equal(area)))
		})

		It("rejeita quantidade menor que um sem tocar o inventário", func() {
			_, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     gym.ID,
				MachineID: machine.ID,
				Quantity:  0,
			})

			Expect(err).To(MatchError(domainerrors.ErrInvalidQuantity))

			stored, _ := service.GetGym(ctx, gym.ID)
			Expect(stored.Inventory).To(BeEmpty())
		})

		It("máquina inexistente falha antes de alterar a academia", func() {
			_, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     gym.ID,
				MachineID: "65a0000000000000000001ff",
				Quantity:  2,
			})

			Expect(err).To(MatchError(domainerrors.ErrMachineNotFound))

			stored, _ := service.GetGym(ctx, gym.ID)
			Expect(stored.Inventory).To(BeEmpty())
		})

		It("academia inexistente retorna não encontrada", func() {
			_, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     "65a0000000000000000000ff",
				MachineID: machine.ID,
				Quantity:  2,
			})

			Expect(err).To(MatchError(domainerrors.ErrGymNotFound))
		})
	})

	Describe("GetGym", func() {
		It("propaga não encontrada para id desconhecido", func() {
			_, err := service.GetGym(ctx, "65a0000000000000000000ff")
			Expect(err).To(MatchError(domainerrors.ErrGymNotFound))
		})
	})

	Describe("CreateGym", func() {
		It("rejeita academia sem nome", func() {
			_, err := service.CreateGym(ctx, &entities.Gym{City: "Recife"})
			Expect(err).To(HaveOccurred())
		})

		It("persiste e retorna a academia criada", func() {
			created, err := service.CreateGym(ctx, &entities.Gym{
				Name:      "Academia Norte",
				PriceTier: entities.PriceTierBudget,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Name).To(Equal("Academia Norte"))
		})
	})

	Describe("FindGymsByMachine", func() {
		It("retorna apenas academias cujo inventário contém a máquina", func() {
			other := &entities.Gym{
				ID:   "65a000000000000000000002",
				Name: "Academia Sul",
				City: "Recife",
			}
			gymRepo.add(other)

			_, err := service.LinkMachine(ctx, LinkMachineInput{
				GymID:     gym.ID,
				MachineID: machine.ID,
				Quantity:  1,
			})
			Expect(err).NotTo(HaveOccurred())

			found, err := service.FindGymsByMachine(ctx, machine.ID, repositories.GymByMachineFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].ID).To(Equal(gym.ID))
		})

		It("máquina inexistente retorna não encontrada", func() {
			_, err := service.FindGymsByMachine(ctx, "65a0000000000000000001ff", repositories.GymByMachineFilters{})
			Expect(err).To(MatchError(domainerrors.ErrMachineNotFound))
		})
	})
})
