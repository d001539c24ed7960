package reports

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/skladpro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

func (uc *UseCase) buildStock(ctx context.Context) (*entity.Report, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	r := newReport(entity.ReportStock, "Товар", "Артикул", "Категория", "Ячейка", "Количество", "Цена", "Стоимость")
	units := 0
	total := decimal.Zero
	for _, p := range products {
		v := p.Value()
		units += p.Quantity
		total = total.Add(v)
		r.Rows = append(r.Rows, []string{
			p.Name, p.SKU, p.Category, p.Location, strconv.Itoa(p.Quantity), money(p.Price), money(v),
		})
	}
	r.Summary = []entity.ReportLine{
		{Label: "Позиций", Value: strconv.Itoa(len(products))},
		{Label: "Всего единиц", Value: strconv.Itoa(units)},
		{Label: "Общая стоимость", Value: money(total)},
	}
	return r, nil
}

type movement struct {
	date, number, counterparty, direction, status string
	items                                         int
}

func (uc *UseCase) buildMovement(ctx context.Context) (*entity.Report, error) {
	receipts, err := uc.repo.Receipts(ctx)
	if err != nil {
		return nil, err
	}
	shipments, err := uc.repo.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	var moves []movement
	in, out := 0, 0
	for _, rc := range receipts {
		in += rc.Items
		moves = append(moves, movement{rc.Date, rc.Number, rc.Supplier, "Приход", string(rc.Status), rc.Items})
	}
	for _, sh := range shipments {
		out += sh.Items
		moves = append(moves, movement{sh.Date, sh.Number, sh.Customer, "Расход", string(sh.Status), sh.Items})
	}
	// más reciente primero; a igual fecha, por número de documento
	slices.SortStableFunc(moves, func(a, b movement) int {
		if c := cmp.Compare(b.date, a.date); c != 0 {
			return c
		}
		return cmp.Compare(a.number, b.number)
	})

	r := newReport(entity.ReportMovement, "Дата", "Документ", "Контрагент", "Направление", "Статус", "Количество")
	for _, m := range moves {
		r.Rows = append(r.Rows, []string{m.date, m.number, m.counterparty, m.direction, m.status, strconv.Itoa(m.items)})
	}
	r.Summary = []entity.ReportLine{
		{Label: "Приход", Value: strconv.Itoa(in)},
		{Label: "Расход", Value: strconv.Itoa(out)},
		{Label: "Сальдо", Value: strconv.Itoa(in - out)},
	}
	return r, nil
}

// Umbrales de la clasificación ABC sobre la participación acumulada.
var (
	abcLimitA = decimal.NewFromInt(80)
	abcLimitB = decimal.NewFromInt(95)
)

func (uc *UseCase) buildABC(ctx context.Context) (*entity.Report, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(products, func(a, b entity.Product) int {
		return b.Value().Cmp(a.Value())
	})
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Value())
	}

	r := newReport(entity.ReportABC, "Товар", "Артикул", "Стоимость", "Доля", "Накопленная доля", "Класс")
	counts := map[string]int{}
	cumulative := decimal.Zero
	for _, p := range products {
		share := decimal.Zero
		if !total.IsZero() {
			share = p.Value().Div(total).Mul(hundred)
		}
		class := abcClass(cumulative)
		cumulative = cumulative.Add(share)
		counts[class]++
		r.Rows = append(r.Rows, []string{
			p.Name, p.SKU, money(p.Value()), pct(share), pct(cumulative), class,
		})
	}
	r.Summary = []entity.ReportLine{
		{Label: "Класс A", Value: strconv.Itoa(counts["A"])},
		{Label: "Класс B", Value: strconv.Itoa(counts["B"])},
		{Label: "Класс C", Value: strconv.Itoa(counts["C"])},
		{Label: "Общая стоимость", Value: money(total)},
	}
	return r, nil
}

// abcClass clase según la participación acumulada ANTES del producto: el primero siempre es A.
func abcClass(before decimal.Decimal) string {
	switch {
	case before.LessThan(abcLimitA):
		return "A"
	case before.LessThan(abcLimitB):
		return "B"
	default:
		return "C"
	}
}

func (uc *UseCase) buildOccupancy(ctx context.Context) (*entity.Report, error) {
	zones, err := uc.repo.Zones(ctx)
	if err != nil {
		return nil, err
	}
	r := newReport(entity.ReportOccupancy, "Зона", "Расположение", "Заполненность", "Единиц")
	sum, items := 0, 0
	for _, z := range zones {
		sum += z.Capacity
		items += z.Items
		r.Rows = append(r.Rows, []string{z.Name, z.Location, z.CapacityLabel(), strconv.Itoa(z.Items)})
	}
	avg := decimal.Zero
	if len(zones) > 0 {
		avg = decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(zones))))
	}
	r.Summary = []entity.ReportLine{
		{Label: "Средняя заполненность", Value: pct(avg)},
		{Label: "Всего единиц", Value: strconv.Itoa(items)},
	}
	return r, nil
}

func (uc *UseCase) buildTurnover(ctx context.Context) (*entity.Report, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	shipments, err := uc.repo.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	contractors, err := uc.repo.Contractors(ctx)
	if err != nil {
		return nil, err
	}
	stock, shipped := 0, 0
	for _, p := range products {
		stock += p.Quantity
	}
	for _, s := range shipments {
		shipped += s.Items
	}
	slices.SortStableFunc(contractors, func(a, b entity.Contractor) int {
		return cmp.Compare(b.Orders, a.Orders)
	})

	r := newReport(entity.ReportTurnover, "Контрагент", "Тип", "Контакт", "Заказов")
	for _, c := range contractors {
		r.Rows = append(r.Rows, []string{c.Name, c.Type, c.Contact, strconv.Itoa(c.Orders)})
	}
	ratio := decimal.Zero
	if stock > 0 {
		ratio = decimal.NewFromInt(int64(shipped)).Div(decimal.NewFromInt(int64(stock)))
	}
	r.Summary = []entity.ReportLine{
		{Label: "Отгружено единиц", Value: strconv.Itoa(shipped)},
		{Label: "Остаток на складе", Value: strconv.Itoa(stock)},
		{Label: "Коэффициент оборачиваемости", Value: ratio.StringFixed(2)},
	}
	return r, nil
}

func (uc *UseCase) buildEfficiency(ctx context.Context) (*entity.Report, error) {
	orders, err := uc.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	receipts, err := uc.repo.Receipts(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := uc.repo.InventoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	delivered := 0
	for _, o := range orders {
		if o.Status == entity.OrderDelivered {
			delivered++
		}
	}
	accepted := 0
	for _, rc := range receipts {
		if rc.Status == entity.ReceiptAccepted {
			accepted++
		}
	}
	progress, completed := 0, 0
	for _, c := range counts {
		progress += c.Progress
		if c.Completed() {
			completed++
		}
	}
	avgProgress := decimal.Zero
	if len(counts) > 0 {
		avgProgress = decimal.NewFromInt(int64(progress)).Div(decimal.NewFromInt(int64(len(counts))))
	}

	r := newReport(entity.ReportEfficiency, "Показатель", "Значение", "Основание")
	r.Rows = [][]string{
		{"Доставлено заказов", ratioPct(delivered, len(orders)), strconv.Itoa(delivered) + " из " + strconv.Itoa(len(orders))},
		{"Принято поставок", ratioPct(accepted, len(receipts)), strconv.Itoa(accepted) + " из " + strconv.Itoa(len(receipts))},
		{"Средний прогресс инвентаризации", pct(avgProgress), strconv.Itoa(len(counts)) + " инвентаризаций"},
		{"Завершено инвентаризаций", ratioPct(completed, len(counts)), strconv.Itoa(completed) + " из " + strconv.Itoa(len(counts))},
	}
	r.Summary = []entity.ReportLine{
		{Label: "Заказов", Value: strconv.Itoa(len(orders))},
		{Label: "Поставок", Value: strconv.Itoa(len(receipts))},
	}
	return r, nil
}

func newReport(kind entity.ReportKind, columns ...string) *entity.Report {
	return &entity.Report{Kind: kind, Title: kind.Title(), Columns: columns, Rows: [][]string{}}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func pct(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

func ratioPct(part, whole int) string {
	if whole == 0 {
		return pct(decimal.Zero)
	}
	return pct(decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(whole))).Mul(hundred))
}
