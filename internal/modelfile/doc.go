// Package modelfile loads entity graphs from YAML model files.
//
// # Schema Overview
//
//	version: "1"
//	namespace: http://example.com/order/v02   # default for unprefixed names
//	namespaces:
//	  ord: http://example.com/order/v02
//	simple_types:
//	  - name: ord:Code
//	    base: string
//	    enumeration: [A, B]
//	value_types:
//	  - name: ord:Amount
//	    parent: xsd:decimal
//	    attributes: [{name: currency, type: xsd:string}]
//	objects:
//	  - kind: business            # business, core, choice or operation
//	    name: ord:Order
//	    extends: ord:BaseOrder
//	    aliases: [OrderAlias]
//	    facets:
//	      - type: summary
//	        attributes: [{name: id, type: xsd:string}]
//	        indicators: [{name: Valid}, {name: Active, element: true}]
//	        elements:
//	          - {name: item, type: ord:Item, repeat: 2}
//	      - type: custom
//	        label: VIP
//	action_facets:
//	  - name: ord:CreateOrder
//	    business_object: ord:Order
//	    reference: required
//	    base_payload: ord:OrderPayload
//	extension_points:
//	  - namespace: http://example.com/ext/v01
//	    extends: ord:Order#summary
//	    elements: [{name: note, type: xsd:string}]
//
// Type references are "prefix:Name" optionally followed by a fragment:
// "#detail" or "#custom:VIP" for a facet, "#list" or "#detail-list" for a
// core object's list facet, and "Alias#detail" for a facet alias.
// Unprefixed builtin names such as "string" resolve to XML Schema types.
//
// Value type indicators are always attributes; "element: true" is only
// accepted on facet and extension point indicators. A core object's roles
// set how many items its list facets hold.
package modelfile
