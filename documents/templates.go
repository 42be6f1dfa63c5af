package documents

// thermalTemplate is the 60mm receipt layout used by point-of-sale thermal
// printers. Widths are fixed in millimeters so the browser print dialog does
// not rescale the ticket.
const thermalTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Factura {{.Factura.IDFactura}}</title>
<style>
  @page { size: 60mm auto; margin: 0; }
  body { width: 60mm; margin: 0; padding: 2mm; font-family: monospace; font-size: 9px; color: #000; }
  h1 { font-size: 11px; text-align: center; margin: 0 0 2px; }
  .center { text-align: center; }
  .sep { border-top: 1px dashed #000; margin: 3px 0; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 1px 0; vertical-align: top; }
  .num { text-align: right; }
  .totals td { padding-top: 1px; }
</style>
</head>
<body>
<h1>{{.Company.Name}}</h1>
{{if .Company.NIT}}<div class="center">NIT {{.Company.NIT}}</div>{{end}}
{{if .Company.Address}}<div class="center">{{.Company.Address}}</div>{{end}}
{{if .Company.Phone}}<div class="center">Tel {{.Company.Phone}}</div>{{end}}
<div class="sep"></div>
<div>Factura No. {{.Factura.IDFactura}}</div>
<div>Fecha: {{.Factura.Fecha}}</div>
<div>Vendedor: {{.Factura.Vendedor}}</div>
{{if .Cliente}}<div>Cliente: {{.Cliente.NombreCliente}}</div>
<div>CC: {{.Cliente.Cedula}}</div>{{end}}
{{if .Placa}}<div>Placa: {{.Placa}}</div>{{end}}
<div class="sep"></div>
<table>
{{range .Items}}<tr><td>{{.Nombre}}</td><td class="num">{{.Cantidad}}</td><td class="num">{{cop .Total}}</td></tr>
{{end}}</table>
<div class="sep"></div>
<table class="totals">
{{if gt .Factura.Descuento 0.0}}<tr><td>Valor</td><td class="num">{{cop .Bruto}}</td></tr>
<tr><td>Descuento</td><td class="num">{{cop .Factura.Descuento}}</td></tr>
{{end}}<tr><td>Subtotal</td><td class="num">{{cop .Factura.Subtotal}}</td></tr>
<tr><td>IVA</td><td class="num">{{cop .Factura.IVA}}</td></tr>
<tr><td><strong>Total</strong></td><td class="num"><strong>{{cop .Factura.Total}}</strong></td></tr>
</table>
{{if gt .Factura.PagoEfectivo 0.0}}<div>Efectivo: {{cop .Factura.PagoEfectivo}}</div>{{end}}
{{if gt .Factura.PagoTarjeta 0.0}}<div>Tarjeta: {{cop .Factura.PagoTarjeta}}</div>{{end}}
{{if gt .Factura.PagoTransferencia 0.0}}<div>Transferencia: {{cop .Factura.PagoTransferencia}}</div>{{end}}
{{if .Observaciones}}<div class="sep"></div>
<div>{{.Observaciones}}</div>{{end}}
<div class="sep"></div>
<div class="center">Gracias por su compra</div>
</body>
</html>
`

// standardTemplate is the letter-size invoice layout
const standardTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Factura {{.Factura.IDFactura}}</title>
<style>
  @page { size: A4; margin: 15mm; }
  body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; color: #222; }
  header { display: flex; justify-content: space-between; margin-bottom: 16px; }
  h1 { font-size: 18px; margin: 0; }
  .meta { text-align: right; }
  table.items { width: 100%; border-collapse: collapse; margin: 12px 0; }
  table.items th, table.items td { border: 1px solid #999; padding: 4px 6px; }
  table.items th { background: #eee; text-align: left; }
  .num { text-align: right; }
  table.totals { margin-left: auto; border-collapse: collapse; }
  table.totals td { padding: 2px 8px; }
  .obs { margin-top: 16px; border: 1px solid #ccc; padding: 8px; }
</style>
</head>
<body>
<header>
  <div>
    {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="{{.Company.Name}}" height="48">{{end}}
    <h1>{{.Company.Name}}</h1>
    {{if .Company.NIT}}<div>NIT {{.Company.NIT}}</div>{{end}}
    {{if .Company.Address}}<div>{{.Company.Address}}</div>{{end}}
    {{if .Company.Phone}}<div>Tel {{.Company.Phone}}</div>{{end}}
    {{if .Company.Email}}<div>{{.Company.Email}}</div>{{end}}
  </div>
  <div class="meta">
    <h1>Factura No. {{.Factura.IDFactura}}</h1>
    <div>Fecha: {{.Factura.Fecha}}</div>
    <div>Vendedor: {{.Factura.Vendedor}}</div>
  </div>
</header>
{{if .Cliente}}<section>
  <strong>Cliente</strong>
  <div>{{.Cliente.NombreCliente}} &middot; CC {{.Cliente.Cedula}}</div>
  <div>{{.Cliente.Correo}} &middot; {{.Cliente.Telefono}}</div>
  {{if $.Placa}}<div>Placa: {{$.Placa}}</div>{{end}}
</section>{{end}}
<table class="items">
  <tr><th>Descripcion</th><th class="num">Cantidad</th><th class="num">Precio</th><th class="num">Total</th></tr>
{{range .Items}}  <tr><td>{{.Nombre}}</td><td class="num">{{.Cantidad}}</td><td class="num">{{cop .Precio}}</td><td class="num">{{cop .Total}}</td></tr>
{{end}}</table>
<table class="totals">
{{if gt .Factura.Descuento 0.0}}  <tr><td>Valor</td><td class="num">{{cop .Bruto}}</td></tr>
  <tr><td>Descuento</td><td class="num">{{cop .Factura.Descuento}}</td></tr>
{{end}}  <tr><td>Subtotal</td><td class="num">{{cop .Factura.Subtotal}}</td></tr>
  <tr><td>IVA</td><td class="num">{{cop .Factura.IVA}}</td></tr>
  <tr><td><strong>Total</strong></td><td class="num"><strong>{{cop .Factura.Total}}</strong></td></tr>
{{if gt .Factura.PagoEfectivo 0.0}}  <tr><td>Efectivo</td><td class="num">{{cop .Factura.PagoEfectivo}}</td></tr>
{{end}}{{if gt .Factura.PagoTarjeta 0.0}}  <tr><td>Tarjeta</td><td class="num">{{cop .Factura.PagoTarjeta}}</td></tr>
{{end}}{{if gt .Factura.PagoTransferencia 0.0}}  <tr><td>Transferencia</td><td class="num">{{cop .Factura.PagoTransferencia}}</td></tr>
{{end}}</table>
{{if .Observaciones}}<div class="obs"><strong>Observaciones:</strong> {{.Observaciones}}</div>{{end}}
</body>
</html>
`
